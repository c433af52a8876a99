package domain

import (
	"strconv"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// TrackID is a unique identifier for a resolved track.
type TrackID string

// Track represents a playable audio track. The encoded stream source is an
// opaque locator produced by the resolver; it is never inspected locally.
type Track struct {
	ID         TrackID
	Encoded    string // Lavalink encoded track data (the stream source)
	Title      string
	Artist     string
	Duration   time.Duration
	URI        string
	SourceName string // e.g., "youtube", "soundcloud"
	IsStream   bool
}

// IsValid returns true if the track has the minimum required fields.
func (t *Track) IsValid() bool {
	return t.Encoded != "" && t.Title != ""
}

// FormattedDuration returns the duration as a human-readable string (mm:ss or hh:mm:ss).
func (t *Track) FormattedDuration() string {
	if t.IsStream {
		return "LIVE"
	}

	totalSeconds := int(t.Duration.Seconds())
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return pad(hours) + ":" + pad(minutes) + ":" + pad(seconds)
	}
	return pad(minutes) + ":" + pad(seconds)
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// QueuedRequest pairs a resolved track with the voice channel the requester
// was connected to at enqueue time. It is owned by the queue until dequeued.
type QueuedRequest struct {
	Track          *Track
	VoiceChannelID snowflake.ID
	RequesterID    snowflake.ID
	EnqueuedAt     time.Time
}

// NewQueuedRequest creates a new QueuedRequest with the current time as EnqueuedAt.
func NewQueuedRequest(track *Track, voiceChannelID, requesterID snowflake.ID) QueuedRequest {
	return QueuedRequest{
		Track:          track,
		VoiceChannelID: voiceChannelID,
		RequesterID:    requesterID,
		EnqueuedAt:     time.Now().UTC(),
	}
}
