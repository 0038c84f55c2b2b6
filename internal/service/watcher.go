package service

import (
	"context"
	"fmt"
	"time"

	"parking_sms/internal/logger"
	"parking_sms/internal/metrics"
	"parking_sms/internal/models"
	"parking_sms/internal/parking"
	"parking_sms/internal/repository"

	"github.com/google/uuid"
)

// SessionWatcher appends a SESSION_EXPIRED event for every remembered session
// whose expiry falls between two ticks. It only reads snapshots.
type SessionWatcher struct {
	snapshots repository.SnapshotRepo
	events    repository.EventRepo
	table     models.TariffTable
	metrics   metrics.Recorder
	log       *logger.Logger
	now       func() time.Time
}

func NewSessionWatcher(snapshots repository.SnapshotRepo, events repository.EventRepo, table models.TariffTable, rec metrics.Recorder, log *logger.Logger) *SessionWatcher {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionWatcher{
		snapshots: snapshots,
		events:    events,
		table:     table,
		metrics:   rec,
		log:       log,
		now:       time.Now,
	}
}

// Run ticks at the given interval until ctx is canceled. Sessions that
// expired before Run started are not reported.
func (w *SessionWatcher) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	since := w.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			now := w.now()
			if _, err := w.scan(ctx, since, now); err != nil {
				// keep since so the window is retried on the next tick
				w.log.Warnw("session_watcher_scan_failed", "err", err)
				continue
			}
			since = now
		}
	}
}

// scan reports sessions with since < expiry <= now and returns how many.
func (w *SessionWatcher) scan(ctx context.Context, since, now time.Time) (int, error) {
	owners, err := w.snapshots.Owners(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, ownerID := range owners {
		raw, err := w.snapshots.Load(ctx, ownerID)
		if err != nil {
			w.log.Warnw("session_watcher_load_failed", "err", err, "owner_id", ownerID)
			continue
		}
		if raw == nil {
			continue
		}
		st, ok := parking.DecodeSnapshot(raw, w.table)
		if !ok || st.LastSession == nil {
			continue
		}
		sess := *st.LastSession
		exp := sess.Expiry()
		if !exp.After(since) || exp.After(now) {
			continue
		}
		err = w.events.Append(ctx, models.ParkingEvent{
			EventID:     uuid.NewString(),
			OwnerID:     ownerID,
			OccurredAt:  exp.UTC(),
			Type:        models.EventSessionExpired,
			Description: fmt.Sprintf("parking for %s expired", sess.Plate),
			Metadata: map[string]any{
				"plate":            sess.Plate,
				"started_at":       sess.Start.UTC(),
				"duration_minutes": sess.DurationMinutes,
			},
		})
		if err != nil {
			w.log.Warnw("session_watcher_append_failed", "err", err, "owner_id", ownerID)
			continue
		}
		w.metrics.SessionExpired()
		n++
	}
	return n, nil
}
