package parking

import (
	"math"
	"time"

	"parking_sms/internal/models"
)

// SessionVisibleFor is how long after its start a session is still shown.
const SessionVisibleFor = 24 * time.Hour

// MaxSessionMinutes is the longest session a tariff or snapshot may carry.
const MaxSessionMinutes = int(SessionVisibleFor / time.Minute)

// TrackSession derives the display state of s at now. It has no side effects
// and must be re-evaluated on every render.
func TrackSession(s *models.Session, now time.Time) models.SessionView {
	if s == nil || s.Start.IsZero() {
		return models.SessionView{Status: models.SessionNone}
	}
	if now.Sub(s.Start) > SessionVisibleFor {
		return models.SessionView{Status: models.SessionNone}
	}

	start := s.Start
	expiry := s.Expiry()
	view := models.SessionView{
		Plate:     s.Plate,
		StartedAt: &start,
		ExpiresAt: &expiry,
	}
	if now.Before(expiry) {
		view.Status = models.SessionActive
		view.MinutesRemaining = minutesCeil(expiry.Sub(now))
		return view
	}
	view.Status = models.SessionExpired
	return view
}

// minutesCeil rounds d up to whole minutes.
func minutesCeil(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(time.Minute)))
}
