package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	parking_sms "parking_sms"
	"parking_sms/internal/logger"
	"parking_sms/internal/metrics"
	"parking_sms/internal/models"
	"parking_sms/internal/parking"
	"parking_sms/internal/repository"

	"github.com/google/uuid"
)

// ParkingService loads an owner's snapshot, applies one reducer step, writes
// the whole snapshot back and renders the result.
type ParkingService struct {
	// mu serializes read-modify-write cycles within this process only.
	mu sync.Mutex

	snapshots   repository.SnapshotRepo
	events      repository.EventRepo
	table       models.TariffTable
	destination string
	strict      bool
	metrics     metrics.Recorder
	log         *logger.Logger
	now         func() time.Time
}

func NewParkingService(snapshots repository.SnapshotRepo, events repository.EventRepo, d Deps) *ParkingService {
	if d.Metrics == nil {
		d.Metrics = metrics.Nop{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &ParkingService{
		snapshots:   snapshots,
		events:      events,
		table:       d.Tariffs,
		destination: d.Destination,
		strict:      d.Strict,
		metrics:     d.Metrics,
		log:         d.Log,
		now:         time.Now,
	}
}

// mutation changes st in place and returns the event to log, or nil.
type mutation func(st *models.State, now time.Time) (*models.ParkingEvent, error)

func (s *ParkingService) Tariffs() models.TariffTable { return s.table }

func (s *ParkingService) View(ctx context.Context, ownerID int, p ViewParams) (models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx, ownerID)
	if err != nil {
		return models.View{}, err
	}
	return s.render(ownerID, st, s.now(), p)
}

func (s *ParkingService) SetZone(ctx context.Context, ownerID int, zone string, p ViewParams) (models.View, error) {
	return s.apply(ctx, ownerID, p, func(st *models.State, _ time.Time) (*models.ParkingEvent, error) {
		from := st.Zone
		fromDuration := st.DurationValue
		if err := parking.SetZone(st, s.table, zone); err != nil {
			return nil, err
		}
		if from == st.Zone {
			return nil, nil
		}
		return &models.ParkingEvent{
			Type:        models.EventZoneChange,
			Description: fmt.Sprintf("zone %s -> %s", from, st.Zone),
			Metadata: map[string]any{
				"from": from, "to": st.Zone,
				"duration_from": fromDuration, "duration_to": st.DurationValue,
			},
		}, nil
	})
}

func (s *ParkingService) SetDuration(ctx context.Context, ownerID int, value string, p ViewParams) (models.View, error) {
	return s.apply(ctx, ownerID, p, func(st *models.State, _ time.Time) (*models.ParkingEvent, error) {
		from := st.DurationValue
		if err := parking.SetDuration(st, s.table, value); err != nil {
			return nil, err
		}
		if from == st.DurationValue {
			return nil, nil
		}
		return &models.ParkingEvent{
			Type:        models.EventDurationChange,
			Description: fmt.Sprintf("duration %s -> %s", from, st.DurationValue),
			Metadata:    map[string]any{"zone": st.Zone, "from": from, "to": st.DurationValue},
		}, nil
	})
}

// SetPlate is called per keystroke and is not logged.
func (s *ParkingService) SetPlate(ctx context.Context, ownerID int, raw string, p ViewParams) (models.View, error) {
	return s.apply(ctx, ownerID, p, func(st *models.State, _ time.Time) (*models.ParkingEvent, error) {
		parking.SetPlate(st, raw)
		return nil, nil
	})
}

func (s *ParkingService) SavePlate(ctx context.Context, ownerID int, p ViewParams) (models.View, error) {
	return s.apply(ctx, ownerID, p, func(st *models.State, _ time.Time) (*models.ParkingEvent, error) {
		if !parking.SavePlate(st) {
			return nil, nil
		}
		return plateEvent(models.EventPlateSaved, st.Plate), nil
	})
}

func (s *ParkingService) PickPlate(ctx context.Context, ownerID int, plate string, p ViewParams) (models.View, error) {
	return s.apply(ctx, ownerID, p, func(st *models.State, _ time.Time) (*models.ParkingEvent, error) {
		parking.PickPlate(st, plate)
		return plateEvent(models.EventPlatePicked, st.Plate), nil
	})
}

func (s *ParkingService) DeletePlate(ctx context.Context, ownerID int, plate string, p ViewParams) (models.View, error) {
	return s.apply(ctx, ownerID, p, func(st *models.State, _ time.Time) (*models.ParkingEvent, error) {
		if !parking.DeletePlate(st, plate) {
			return nil, nil
		}
		return plateEvent(models.EventPlateDeleted, parking.NormalizePlate(plate)), nil
	})
}

// Send records the confirmed session. Opening the returned SMS URI is left to
// the client; nothing here talks to the operator.
func (s *ParkingService) Send(ctx context.Context, ownerID int, p ViewParams) (models.View, error) {
	p.Platform = platformOrDefault(p.Platform)
	return s.apply(ctx, ownerID, p, func(st *models.State, now time.Time) (*models.ParkingEvent, error) {
		sess, err := parking.ConfirmSend(st, s.table, now)
		if err != nil {
			return nil, err
		}
		opt := s.resolve(ownerID, st)
		s.metrics.MessageComposed(st.Zone, st.DurationValue, string(p.Platform))
		msg := parking.ComposeMessage(opt, sess.Plate)
		return &models.ParkingEvent{
			Type:        models.EventSend,
			Description: fmt.Sprintf("SMS %q to %s", msg, s.dest()),
			Metadata: map[string]any{
				"zone":             st.Zone,
				"duration":         st.DurationValue,
				"price":            opt.Price,
				"code":             opt.Code,
				"plate":            sess.Plate,
				"message":          msg,
				"platform":         string(p.Platform),
				"duration_minutes": sess.DurationMinutes,
				"expires_at":       sess.Expiry(),
			},
		}, nil
	})
}

func (s *ParkingService) apply(ctx context.Context, ownerID int, p ViewParams, fn mutation) (models.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(ctx, ownerID)
	if err != nil {
		return models.View{}, err
	}
	now := s.now().UTC()
	ev, err := fn(&st, now)
	if err != nil {
		return models.View{}, err
	}
	// strict mode panics here, before anything is written
	s.resolve(ownerID, &st)

	body, err := parking.EncodeSnapshot(st)
	if err != nil {
		return models.View{}, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.snapshots.Save(ctx, ownerID, body); err != nil {
		return models.View{}, err
	}

	if ev != nil {
		ev.EventID = uuid.NewString()
		ev.OwnerID = ownerID
		ev.OccurredAt = now
		if err := s.events.Append(ctx, *ev); err != nil {
			s.log.Warnw("parking_event_append_failed", "err", err, "owner_id", ownerID, "type", ev.Type)
		}
	}
	return s.render(ownerID, st, now, p)
}

// load reads the owner's snapshot. Undecodable snapshots fall back to the
// default state instead of failing the request.
func (s *ParkingService) load(ctx context.Context, ownerID int) (models.State, error) {
	raw, err := s.snapshots.Load(ctx, ownerID)
	if err != nil {
		return models.State{}, err
	}
	if raw == nil {
		return parking.DefaultState(s.table), nil
	}
	st, ok := parking.DecodeSnapshot(raw, s.table)
	if !ok {
		s.metrics.SnapshotFallback()
		s.log.Warnw("parking_snapshot_unreadable", "owner_id", ownerID, "bytes", len(raw))
	}
	return st, nil
}

func (s *ParkingService) render(ownerID int, st models.State, now time.Time, p ViewParams) (models.View, error) {
	s.resolve(ownerID, &st)
	return parking.Render(st, s.table, parking.RenderOptions{
		Now:         now,
		Platform:    platformOrDefault(p.Platform),
		Destination: s.dest(),
	})
}

// resolve returns the tariff of the current selection. A selection outside the
// table panics in strict mode and is otherwise logged and repaired in place.
func (s *ParkingService) resolve(ownerID int, st *models.State) models.TariffOption {
	if s.strict {
		return parking.MustResolveTariff(s.table, st.Zone, st.DurationValue)
	}
	opt, err := parking.ResolveTariff(s.table, st.Zone, st.DurationValue)
	if err == nil {
		return opt
	}
	s.log.Errorw("parking_selection_invalid", "err", err, "owner_id", ownerID, "zone", st.Zone, "duration", st.DurationValue)
	parking.Repair(st, s.table)
	opt, _ = parking.ResolveTariff(s.table, st.Zone, st.DurationValue)
	return opt
}

func (s *ParkingService) dest() string {
	if s.destination == "" {
		return parking_sms.DestinationNumber
	}
	return s.destination
}

func platformOrDefault(p parking.Platform) parking.Platform {
	if p == "" {
		return parking.PlatformAndroid
	}
	return p
}

func plateEvent(typ, plate string) *models.ParkingEvent {
	return &models.ParkingEvent{
		Type:        typ,
		Description: fmt.Sprintf("%s %s", typ, plate),
		Metadata:    map[string]any{"plate": plate},
	}
}
