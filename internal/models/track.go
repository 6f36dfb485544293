package models

// Track is a queued song. Playback itself is delegated to the voice
// layer; the queue only carries metadata.
type Track struct {
	URL   string `json:"url"`
	Title string `json:"title"`

	// Duration is the track length in seconds
	Duration int `json:"duration"`

	// RequestedBy is the user ID that queued the track, empty for
	// tracks restored from disk
	RequestedBy string `json:"requested_by,omitempty"`
}
