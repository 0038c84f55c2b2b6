package models

// State is the whole per-owner snapshot the UI works on.
type State struct {
	Zone          string   `json:"zone"`
	DurationValue string   `json:"duration_value"`
	Plate         string   `json:"plate"`
	SavedPlates   []string `json:"saved_plates"`
	LastSession   *Session `json:"last_session,omitempty"`
}
