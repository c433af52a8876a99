package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// VoiceConnector defines the interface for voice channel connection
// operations. Joining while already connected to a different channel moves
// the session without tearing it down.
type VoiceConnector interface {
	// JoinChannel connects the bot to the specified voice channel.
	JoinChannel(ctx context.Context, guildID, channelID snowflake.ID) error

	// LeaveChannel disconnects the bot from the voice channel and releases
	// the playback resources held for the guild.
	LeaveChannel(ctx context.Context, guildID snowflake.ID) error
}

// VoiceStateProvider defines the interface for getting Discord voice state information.
type VoiceStateProvider interface {
	// GetUserVoiceChannel returns the voice channel ID the user is currently
	// in, or 0 if the user is not in a voice channel.
	GetUserVoiceChannel(guildID, userID snowflake.ID) (snowflake.ID, error)
}
