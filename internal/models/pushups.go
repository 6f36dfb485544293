package models

// PushupLog tracks the daily push-up reminder state.
type PushupLog struct {
	// LastReminder is the date (YYYY-MM-DD) of the last reminder sent
	LastReminder string `json:"last_reminder"`

	// Confirmed is true once the tracked user confirmed today's set
	Confirmed bool `json:"confirmed"`
}
