package models

// Birthday is a registered birthday for a guild member.
type Birthday struct {
	// UserID is the platform user ID
	UserID string `json:"-"`

	// Name is the display name at registration time
	Name string `json:"name"`

	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}
