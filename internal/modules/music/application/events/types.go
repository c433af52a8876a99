package events

import (
	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// TrackEndReason represents why a track ended.
type TrackEndReason string

const (
	// TrackEndFinished means the track finished normally.
	TrackEndFinished TrackEndReason = "finished"
	// TrackEndLoadFailed means the track failed to load mid-playback.
	TrackEndLoadFailed TrackEndReason = "load_failed"
	// TrackEndStopped means the track was stopped explicitly (skip or clear).
	TrackEndStopped TrackEndReason = "stopped"
	// TrackEndReplaced means the track was replaced by another.
	TrackEndReplaced TrackEndReason = "replaced"
	// TrackEndCleanup means the player was torn down.
	TrackEndCleanup TrackEndReason = "cleanup"
)

// ShouldAdvanceQueue returns true if this end reason should advance the
// queue. Explicit stops advance exactly like natural completion so the
// controller's advancement logic is uniform regardless of stop cause.
func (r TrackEndReason) ShouldAdvanceQueue() bool {
	return r == TrackEndFinished || r == TrackEndLoadFailed || r == TrackEndStopped
}

// TrackEndedEvent is the one-shot completion signal delivered back into the
// controller. It is always scheduled through the bus, never invoked inline
// from the audio subsystem's own completion hook.
type TrackEndedEvent struct {
	GuildID snowflake.ID
	Reason  TrackEndReason
}

// PlaybackStartedEvent is published when a track starts playing.
type PlaybackStartedEvent struct {
	GuildID               snowflake.ID
	Track                 *domain.Track
	NotificationChannelID snowflake.ID
}
