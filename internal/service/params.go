package service

import (
	"time"

	"parking_sms/internal/parking"
)

// ViewParams carries per-request inputs of the rendered view.
type ViewParams struct {
	Platform parking.Platform // "" renders the Android form
}

// LogFilter supports history filtering by owner, time range and type.
type LogFilter struct {
	OwnerID int       // 0 means every owner
	From    time.Time // inclusive; zero means no lower bound
	To      time.Time // inclusive; zero means no upper bound
	Type    string    // "", "ZONE_CHANGE", "SEND", "SESSION_EXPIRED", ...
}
