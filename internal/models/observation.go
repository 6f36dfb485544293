package models

// Observation is a single member's presence as seen during a poll
// cycle. Game is empty when the member is not playing anything.
type Observation struct {
	// MemberID is the platform user ID
	MemberID string

	// DisplayName is the member's nickname or username
	DisplayName string

	// Game is the name of the first "playing" activity, if any
	Game string

	// AvatarURL points at the member's avatar image
	AvatarURL string
}
