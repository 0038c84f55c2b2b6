package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_sms/internal/models"
)

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	fromLocal := time.Date(2025, time.September, 10, 10, 0, 0, 0, time.FixedZone("EEST", 3*3600))
	toUTC := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		in       LogFilter
		wantFrom time.Time
		wantTo   time.Time
		wantType string
		wantErr  error
	}{
		{
			name: "all zero ok",
			in:   LogFilter{OwnerID: 3},
		},
		{
			name: "from after to",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: errInvalidTimeRange,
		},
		{
			name:     "from equal to is allowed",
			in:       LogFilter{From: toUTC, To: toUTC},
			wantFrom: toUTC,
			wantTo:   toUTC,
		},
		{
			name:     "normalize tz and type",
			in:       LogFilter{From: fromLocal, To: toUTC, Type: " send "},
			wantFrom: time.Date(2025, time.September, 10, 7, 0, 0, 0, time.UTC),
			wantTo:   toUTC,
			wantType: models.EventSend,
		},
	}

	for _, tc := range tests {
		tc := tc // per-iteration copy; go.mod targets Go 1.21
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeAndValidateFilter(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}
			if !got.From.Equal(tc.wantFrom) || !got.To.Equal(tc.wantTo) {
				t.Fatalf("range: got [%v, %v]; want [%v, %v]", got.From, got.To, tc.wantFrom, tc.wantTo)
			}
			if !got.From.IsZero() && got.From.Location() != time.UTC {
				t.Fatalf("from not in UTC: %v", got.From.Location())
			}
			if got.Type != tc.wantType {
				t.Fatalf("type: got %q; want %q", got.Type, tc.wantType)
			}
			if got.OwnerID != tc.in.OwnerID {
				t.Fatalf("owner must pass through unchanged")
			}
		})
	}
}

func TestEventLogService_List_DelegatesNormalizedFilter(t *testing.T) {
	t.Parallel()

	repo := &memEvents{listed: []models.ParkingEvent{{EventID: "1", OwnerID: 8}}}
	svc := NewEventLogService(repo)

	fromLocal := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	out, err := svc.List(context.Background(), LogFilter{OwnerID: 8, From: fromLocal, Type: "session_expired"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}
	if repo.gotArgs.owner != 8 {
		t.Fatalf("owner = %d, want 8", repo.gotArgs.owner)
	}
	if !repo.gotArgs.from.Equal(time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", repo.gotArgs.from)
	}
	if !repo.gotArgs.to.IsZero() {
		t.Fatalf("open upper bound must stay zero, got %v", repo.gotArgs.to)
	}
	if repo.gotArgs.typ != models.EventSessionExpired {
		t.Fatalf("type = %q", repo.gotArgs.typ)
	}
}

func TestEventLogService_List_Errors(t *testing.T) {
	t.Parallel()

	repo := &memEvents{}
	svc := NewEventLogService(repo)
	_, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange; got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo must not be called on validation error")
	}

	repo.listErr = errors.New("db down")
	if _, err := svc.List(context.Background(), LogFilter{}); !errors.Is(err, repo.listErr) {
		t.Fatalf("expected repo error to propagate; got %v", err)
	}
}
