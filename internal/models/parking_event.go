package models

import "time"

// Activity log event types.
const (
	EventZoneChange     = "ZONE_CHANGE"
	EventDurationChange = "DURATION_CHANGE"
	EventPlateSaved     = "PLATE_SAVED"
	EventPlatePicked    = "PLATE_PICKED"
	EventPlateDeleted   = "PLATE_DELETED"
	EventSend           = "SEND"
	EventSessionExpired = "SESSION_EXPIRED"
)

// ParkingEvent is a single activity log entry.
type ParkingEvent struct {
	EventID     string    `json:"event_id"`
	OwnerID     int       `json:"owner_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
