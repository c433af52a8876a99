package presentation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/warshanks/kcbot/internal/modules/chat/application"
)

// MessageListener replies to messages posted in the configured chat channels.
type MessageListener struct {
	chat     *application.ChatService
	channels map[string]struct{}
}

// NewMessageListener creates a new MessageListener for the given channel IDs.
func NewMessageListener(chat *application.ChatService, channelIDs []string) *MessageListener {
	channels := make(map[string]struct{}, len(channelIDs))
	for _, id := range channelIDs {
		channels[id] = struct{}{}
	}
	return &MessageListener{
		chat:     chat,
		channels: channels,
	}
}

// HandleMessage is the MessageCreate handler. Messages from bots, messages
// outside the configured channels, and command-prefixed messages are ignored.
func (l *MessageListener) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.System {
		return
	}
	if _, ok := l.channels[m.ChannelID]; !ok {
		return
	}
	if strings.HasPrefix(m.Content, "!") {
		return
	}

	// Gateway handlers must not block on the completion call.
	go l.respond(s, m)
}

func (l *MessageListener) respond(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := s.ChannelTyping(m.ChannelID); err != nil {
		slog.Debug("failed to send typing indicator", "channel", m.ChannelID, "error", err)
	}

	sections, err := l.chat.Reply(context.Background(), m.ChannelID, m.Content)
	if err != nil {
		if errors.Is(err, application.ErrRateLimited) {
			return
		}
		slog.Error("failed to generate chat reply", "channel", m.ChannelID, "error", err)
		if _, sendErr := s.ChannelMessageSendReply(
			m.ChannelID, "Something went wrong, try again later!", m.Reference(),
		); sendErr != nil {
			slog.Error("failed to send error reply", "channel", m.ChannelID, "error", sendErr)
		}
		return
	}

	for _, section := range sections {
		if _, err := s.ChannelMessageSendReply(m.ChannelID, section, m.Reference()); err != nil {
			slog.Error("failed to send chat reply", "channel", m.ChannelID, "error", err)
			return
		}
	}
}
