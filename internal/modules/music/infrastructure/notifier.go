package infrastructure

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/application/ports"
	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

const (
	colorGreen = 0x00FF00
	colorRed   = 0xFF0000
)

// DiscordNotifier sends playback notifications as embeds to a text channel.
type DiscordNotifier struct {
	session *discordgo.Session
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(session *discordgo.Session) *DiscordNotifier {
	return &DiscordNotifier{session: session}
}

// SendNowPlaying announces the track whose playback just started.
func (n *DiscordNotifier) SendNowPlaying(channelID snowflake.ID, track *domain.Track) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Now Playing",
		Description: fmt.Sprintf("**%s**", track.Title),
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Artist", Value: track.Artist, Inline: true},
			{Name: "Duration", Value: track.FormattedDuration(), Inline: true},
		},
	}
	if track.URI != "" {
		embed.URL = track.URI
	}

	_, err := n.session.ChannelMessageSendEmbed(channelID.String(), embed)
	if err != nil {
		return fmt.Errorf("failed to send now playing message: %w", err)
	}
	return nil
}

// SendError reports a non-fatal failure to the channel.
func (n *DiscordNotifier) SendError(channelID snowflake.ID, message string) error {
	embed := &discordgo.MessageEmbed{
		Description: message,
		Color:       colorRed,
	}

	_, err := n.session.ChannelMessageSendEmbed(channelID.String(), embed)
	if err != nil {
		return fmt.Errorf("failed to send error message: %w", err)
	}
	return nil
}

var _ ports.Notifier = (*DiscordNotifier)(nil)
