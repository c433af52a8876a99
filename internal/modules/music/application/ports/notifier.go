package ports

import (
	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// Notifier defines the interface for sending asynchronous notifications to a
// guild's text channel. These are the messages that cannot be delivered as a
// direct command response, e.g. failures during queue advancement.
type Notifier interface {
	// SendNowPlaying announces the track whose playback just started.
	SendNowPlaying(channelID snowflake.ID, track *domain.Track) error

	// SendError reports a non-fatal failure to the channel.
	SendError(channelID snowflake.ID, message string) error
}
