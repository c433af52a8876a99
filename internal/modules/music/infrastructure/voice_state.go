package infrastructure

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/application/ports"
)

// DiscordVoiceStateProvider reads voice state from the discordgo session cache.
type DiscordVoiceStateProvider struct {
	session *discordgo.Session
}

// NewDiscordVoiceStateProvider creates a new DiscordVoiceStateProvider.
func NewDiscordVoiceStateProvider(session *discordgo.Session) *DiscordVoiceStateProvider {
	return &DiscordVoiceStateProvider{session: session}
}

// GetUserVoiceChannel returns the voice channel ID the user is currently in,
// or 0 if the user is not in a voice channel.
func (p *DiscordVoiceStateProvider) GetUserVoiceChannel(
	guildID, userID snowflake.ID,
) (snowflake.ID, error) {
	voiceState, err := p.session.State.VoiceState(guildID.String(), userID.String())
	if err != nil {
		if errors.Is(err, discordgo.ErrStateNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get voice state: %w", err)
	}

	if voiceState == nil || voiceState.ChannelID == "" {
		return 0, nil
	}

	channelID, err := snowflake.Parse(voiceState.ChannelID)
	if err != nil {
		return 0, fmt.Errorf("failed to parse voice channel ID: %w", err)
	}
	return channelID, nil
}

var _ ports.VoiceStateProvider = (*DiscordVoiceStateProvider)(nil)
