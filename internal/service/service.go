package service

import (
	"context"
	"time"

	"parking_sms/internal/logger"
	"parking_sms/internal/metrics"
	"parking_sms/internal/models"
	"parking_sms/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Parking is the per-owner state machine behind the UI. Every method returns
// the freshly rendered view.
type Parking interface {
	View(ctx context.Context, ownerID int, p ViewParams) (models.View, error)
	SetZone(ctx context.Context, ownerID int, zone string, p ViewParams) (models.View, error)
	SetDuration(ctx context.Context, ownerID int, value string, p ViewParams) (models.View, error)
	SetPlate(ctx context.Context, ownerID int, raw string, p ViewParams) (models.View, error)
	SavePlate(ctx context.Context, ownerID int, p ViewParams) (models.View, error)
	PickPlate(ctx context.Context, ownerID int, plate string, p ViewParams) (models.View, error)
	DeletePlate(ctx context.Context, ownerID int, plate string, p ViewParams) (models.View, error)
	Send(ctx context.Context, ownerID int, p ViewParams) (models.View, error)
	Tariffs() models.TariffTable
}

// EventLog exposes append-only logs with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ParkingEvent, error)
}

// Watcher reports sessions crossing their expiry. Stop via context
// cancellation.
type Watcher interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Parking
	EventLog
	Watcher
	Authorization
}

// Deps are the non-repository inputs of the services.
type Deps struct {
	Tariffs     models.TariffTable
	Destination string
	Strict      bool
	SigningKey  string
	TokenTTL    time.Duration
	Metrics     metrics.Recorder
	Log         *logger.Logger
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, d Deps) *Service {
	if d.Metrics == nil {
		d.Metrics = metrics.Nop{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &Service{
		Parking:       NewParkingService(repos.Snapshots, repos.EventRepo, d),
		EventLog:      NewEventLogService(repos.EventRepo),
		Watcher:       NewSessionWatcher(repos.Snapshots, repos.EventRepo, d.Tariffs, d.Metrics, d.Log),
		Authorization: NewAuthService(repos.Auth, d.SigningKey, d.TokenTTL),
	}
}
