package parking

import (
	"bytes"
	"encoding/json"
	"time"

	"parking_sms/internal/models"
)

// SnapshotVersion is written by EncodeSnapshot. Version 0 is the legacy
// unversioned object.
const SnapshotVersion = 1

type snapshotSession struct {
	Timestamp    int64  `json:"timestamp"` // epoch millis
	DurationMins int    `json:"durationMins"`
	Plate        string `json:"plate"`
}

type snapshotDoc struct {
	Version       int              `json:"version"`
	Zone          *string          `json:"zone,omitempty"`
	DurationValue *string          `json:"durationValue,omitempty"`
	Plate         *string          `json:"plate,omitempty"`
	SavedPlates   []string         `json:"savedPlates,omitempty"`
	LastSession   *snapshotSession `json:"lastSession,omitempty"`
}

// migrations[v] upgrades a document from version v to v+1.
var migrations = map[int]func(*snapshotDoc){
	0: migrateLegacy,
}

// Legacy snapshots treated blank strings as "unset".
func migrateLegacy(d *snapshotDoc) {
	if d.Zone != nil && *d.Zone == "" {
		d.Zone = nil
	}
	if d.DurationValue != nil && *d.DurationValue == "" {
		d.DurationValue = nil
	}
}

// EncodeSnapshot serializes st in the current snapshot format.
func EncodeSnapshot(st models.State) ([]byte, error) {
	zone, dur, plate := st.Zone, st.DurationValue, st.Plate
	doc := snapshotDoc{
		Version:       SnapshotVersion,
		Zone:          &zone,
		DurationValue: &dur,
		Plate:         &plate,
		SavedPlates:   st.SavedPlates,
	}
	if st.LastSession != nil {
		doc.LastSession = &snapshotSession{
			Timestamp:    st.LastSession.Start.UnixMilli(),
			DurationMins: st.LastSession.DurationMinutes,
			Plate:        st.LastSession.Plate,
		}
	}
	return json.Marshal(doc)
}

// DecodeSnapshot restores a state from raw. A missing, empty or unparseable
// snapshot yields DefaultState and ok=false; it is never an error. Missing
// fields fall back to defaults and the result always satisfies Repair.
func DecodeSnapshot(raw []byte, table models.TariffTable) (st models.State, ok bool) {
	st = DefaultState(table)
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return st, false
	}
	var doc snapshotDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return st, false
	}
	for v := doc.Version; v < SnapshotVersion; v++ {
		if m, found := migrations[v]; found {
			m(&doc)
		}
	}

	if doc.Zone != nil {
		st.Zone = *doc.Zone
	}
	if doc.DurationValue != nil {
		st.DurationValue = *doc.DurationValue
	}
	if doc.Plate != nil {
		st.Plate = *doc.Plate
	}
	if doc.SavedPlates != nil {
		st.SavedPlates = doc.SavedPlates
	}
	if s := doc.LastSession; s != nil && s.Timestamp > 0 && s.DurationMins > 0 && s.DurationMins <= MaxSessionMinutes {
		st.LastSession = &models.Session{
			Plate:           NormalizePlate(s.Plate),
			Start:           time.UnixMilli(s.Timestamp).UTC(),
			DurationMinutes: s.DurationMins,
		}
	}
	Repair(&st, table)
	return st, true
}
