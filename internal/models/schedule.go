package models

// WorkShift is one weekday's working hours for a member.
type WorkShift struct {
	// Entry and Exit are clock times in HH:MM form
	Entry string `json:"entry"`
	Exit  string `json:"exit"`

	// ChannelID is where start/end notifications are posted
	ChannelID string `json:"channel_id"`

	// Name is the member's display name at registration time
	Name string `json:"name"`
}

// WorkSchedule maps weekday names to shifts for a single member.
type WorkSchedule map[string]*WorkShift
