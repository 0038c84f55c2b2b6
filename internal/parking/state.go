package parking

import (
	"fmt"
	"slices"
	"time"

	"parking_sms/internal/models"
)

// DefaultState is the state of a first-time user: the table's first zone and
// its first duration, no plate, no history, no session.
func DefaultState(table models.TariffTable) models.State {
	st := models.State{SavedPlates: []string{}}
	if len(table.Zones) > 0 {
		st.Zone = table.Zones[0].Zone
		if o, ok := firstOption(table, st.Zone); ok {
			st.DurationValue = o.Value
		}
	}
	return st
}

// Repair enforces the selection invariant: the zone exists and the duration
// exists within it. It also normalizes the plate and the history. Returns
// true if anything changed.
func Repair(st *models.State, table models.TariffTable) bool {
	changed := false
	if _, ok := table.Options(st.Zone); !ok {
		def := DefaultState(table)
		st.Zone, st.DurationValue = def.Zone, def.DurationValue
		changed = true
	}
	if !hasDuration(table, st.Zone, st.DurationValue) {
		if o, ok := firstOption(table, st.Zone); ok {
			st.DurationValue = o.Value
			changed = true
		}
	}
	if p := NormalizePlate(st.Plate); p != st.Plate {
		st.Plate = p
		changed = true
	}
	if plates := dedupePlates(st.SavedPlates); !slices.Equal(plates, st.SavedPlates) || st.SavedPlates == nil {
		st.SavedPlates = plates
		changed = true
	}
	return changed
}

// SetZone switches zone. The current duration is kept when the new zone
// offers it, otherwise the zone's first option is selected.
func SetZone(st *models.State, table models.TariffTable, zone string) error {
	first, ok := firstOption(table, zone)
	if !ok {
		return fmt.Errorf("zone %q: %w", zone, ErrUnknownZone)
	}
	st.Zone = zone
	if !hasDuration(table, zone, st.DurationValue) {
		st.DurationValue = first.Value
	}
	return nil
}

// SetDuration selects a duration of the current zone.
func SetDuration(st *models.State, table models.TariffTable, value string) error {
	if !hasDuration(table, st.Zone, value) {
		return fmt.Errorf("zone %q duration %q: %w", st.Zone, value, ErrUnknownDuration)
	}
	st.DurationValue = value
	return nil
}

// SetPlate stores the normalized form of a keystroke's input.
func SetPlate(st *models.State, raw string) {
	st.Plate = NormalizePlate(raw)
}

// SavePlate remembers the current plate if it is sendable and not yet saved.
func SavePlate(st *models.State) bool {
	if !IsSendEnabled(st.Plate) || slices.Contains(st.SavedPlates, st.Plate) {
		return false
	}
	st.SavedPlates = append(st.SavedPlates, st.Plate)
	return true
}

// PickPlate makes a remembered plate the current one.
func PickPlate(st *models.State, plate string) {
	st.Plate = NormalizePlate(plate)
}

// DeletePlate forgets a remembered plate.
func DeletePlate(st *models.State, plate string) bool {
	plate = NormalizePlate(plate)
	i := slices.Index(st.SavedPlates, plate)
	if i < 0 {
		return false
	}
	st.SavedPlates = slices.Delete(st.SavedPlates, i, i+1)
	return true
}

// ConfirmSend records a new session for the current selection, replacing any
// previous one, and remembers the plate.
func ConfirmSend(st *models.State, table models.TariffTable, now time.Time) (models.Session, error) {
	if !IsSendEnabled(st.Plate) {
		return models.Session{}, ErrSendDisabled
	}
	opt, err := ResolveTariff(table, st.Zone, st.DurationValue)
	if err != nil {
		return models.Session{}, err
	}
	mins, err := OptionMinutes(opt)
	if err != nil {
		return models.Session{}, err
	}
	sess := models.Session{
		Plate:           st.Plate,
		Start:           now,
		DurationMinutes: mins,
	}
	st.LastSession = &sess
	SavePlate(st)
	return sess, nil
}
