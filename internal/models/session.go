package models

import "time"

// Session is the locally remembered record of the latest confirmed send.
type Session struct {
	Plate           string    `json:"plate"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Expiry is the instant the purchased time runs out.
func (s Session) Expiry() time.Time {
	return s.Start.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

type SessionStatus string

const (
	SessionNone    SessionStatus = "none"
	SessionActive  SessionStatus = "active"
	SessionExpired SessionStatus = "expired"
)

// SessionView is the display state derived from a Session at a given instant.
type SessionView struct {
	Status           SessionStatus `json:"status"`
	Plate            string        `json:"plate,omitempty"`
	StartedAt        *time.Time    `json:"started_at,omitempty"`
	ExpiresAt        *time.Time    `json:"expires_at,omitempty"`
	MinutesRemaining int           `json:"minutes_remaining,omitempty"`
}
