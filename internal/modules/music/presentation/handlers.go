package presentation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/bot"
	"github.com/warshanks/kcbot/internal/modules/music/application/usecases"
	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// Embed colors.
const (
	colorSuccess = 0x08c404
	colorError   = 0xE74C3C
)

const resolutionFailedMessage = "Could not download the song. Incorrect format, try again. " +
	"Make sure not to use links from playlists or livestreams!"

// Handlers holds all the command handlers.
type Handlers struct {
	player *usecases.PlayerService
}

// NewHandlers creates new Handlers.
func NewHandlers(player *usecases.PlayerService) *Handlers {
	return &Handlers{player: player}
}

// HandlePlay handles the /play command. Resolution is a network call, so the
// interaction is deferred and the result delivered as a followup.
func (h *Handlers) HandlePlay(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	userID, err := snowflake.Parse(i.Member.User.ID)
	if err != nil {
		return respondError(r, "Invalid user")
	}

	notificationChannelID, err := snowflake.Parse(i.ChannelID)
	if err != nil {
		return respondError(r, "Invalid channel")
	}

	var query string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "query" {
			query = opt.StringValue()
		}
	}

	if err := r.Defer(); err != nil {
		return err
	}

	output, err := h.player.Enqueue(context.Background(), usecases.EnqueueInput{
		GuildID:               guildID,
		UserID:                userID,
		NotificationChannelID: notificationChannelID,
		Query:                 query,
	})
	if err != nil {
		var resolutionErr *domain.ResolutionError
		switch {
		case errors.Is(err, usecases.ErrUserNotInVoice):
			return followupError(r, "Connect to a voice channel!")
		case errors.As(err, &resolutionErr):
			return followupError(r, resolutionFailedMessage)
		default:
			return followupError(r, "Something went wrong, try again later!")
		}
	}

	return followupSuccess(r, queueAddedDescription(output.Track))
}

// HandlePause handles the /pause command.
func (h *Handlers) HandlePause(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.player.Pause(context.Background(), guildID); err != nil {
		if errors.Is(err, usecases.ErrNotConnected) {
			return respondError(r, "I'm not in a voice channel!")
		}
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Music paused!")
}

// HandleResume handles the /resume command.
func (h *Handlers) HandleResume(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.player.Resume(context.Background(), guildID); err != nil {
		if errors.Is(err, usecases.ErrNotConnected) {
			return respondError(r, "I'm not in a voice channel!")
		}
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Music resumed!")
}

// HandleSkip handles the /skip command.
func (h *Handlers) HandleSkip(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.player.Skip(context.Background(), guildID); err != nil {
		if errors.Is(err, usecases.ErrNotPlaying) {
			return respondError(r, "No music is playing!")
		}
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Song skipped!")
}

// HandleQueue handles the /queue command.
func (h *Handlers) HandleQueue(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	output := h.player.QueueView(guildID)
	if output.Total == 0 {
		return respondSuccess(r, "No music in queue!")
	}

	var sb strings.Builder
	for _, title := range output.Titles {
		sb.WriteString(title)
		sb.WriteString("\n")
	}
	if output.Total > len(output.Titles) {
		fmt.Fprintf(&sb, "...and %d more", output.Total-len(output.Titles))
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Queue",
					Description: sb.String(),
					Color:       colorSuccess,
				},
			},
		},
	})
}

// HandleClear handles the /clear command.
func (h *Handlers) HandleClear(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.player.Clear(context.Background(), guildID); err != nil {
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Music queue cleared!")
}

// HandleLeave handles the /leave command.
func (h *Handlers) HandleLeave(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return respondError(r, "Invalid guild")
	}

	if err := h.player.Leave(context.Background(), guildID); err != nil {
		if errors.Is(err, usecases.ErrNotConnected) {
			return respondError(r, "I'm not in a voice channel!")
		}
		return respondError(r, err.Error())
	}

	return respondSuccess(r, "Left the voice channel!")
}

// Response helpers.

func queueAddedDescription(track *domain.Track) string {
	if track.URI != "" {
		return fmt.Sprintf("Song added to the queue: [%s](%s)", track.Title, track.URI)
	}
	return fmt.Sprintf("Song added to the queue: **%s**", track.Title)
}

func respondSuccess(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Description: message,
					Color:       colorSuccess,
				},
			},
		},
	})
}

func respondError(r bot.Responder, message string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "Error",
					Description: message,
					Color:       colorError,
				},
			},
		},
	})
}

func followupSuccess(r bot.Responder, message string) error {
	return r.Followup(&discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{
			{
				Description: message,
				Color:       colorSuccess,
			},
		},
	})
}

func followupError(r bot.Responder, message string) error {
	return r.Followup(&discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Error",
				Description: message,
				Color:       colorError,
			},
		},
	})
}
