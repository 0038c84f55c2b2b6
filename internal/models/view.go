package models

// ZoneButton is one zone selector rendered by the client.
type ZoneButton struct {
	Zone   string `json:"zone"`
	Active bool   `json:"active"`
}

// DurationButton is one duration selector of the current zone.
type DurationButton struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Price  int    `json:"price"`
	Active bool   `json:"active"`
}

// View is everything the client needs to draw the screen.
type View struct {
	Zone            string           `json:"zone"`
	DurationValue   string           `json:"duration_value"`
	Plate           string           `json:"plate"`
	ZoneButtons     []ZoneButton     `json:"zone_buttons"`
	DurationButtons []DurationButton `json:"duration_buttons"`
	Price           int              `json:"price"`
	Code            int              `json:"code"`
	MessagePreview  string           `json:"message_preview"`
	SendEnabled     bool             `json:"send_enabled"`
	SMSURI          string           `json:"sms_uri,omitempty"`
	SavedPlates     []string         `json:"saved_plates"`
	Session         SessionView      `json:"session"`
}
