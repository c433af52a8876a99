package presentation

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/warshanks/kcbot/internal/bot"
	"github.com/warshanks/kcbot/internal/modules/chat/application"
)

// Handlers holds the chat command handlers.
type Handlers struct {
	chat *application.ChatService
}

// NewHandlers creates new Handlers.
func NewHandlers(chat *application.ChatService) *Handlers {
	return &Handlers{chat: chat}
}

// HandleHype handles the /hype command. Generation is a slow network call,
// so the interaction is deferred and the result delivered as followups.
func (h *Handlers) HandleHype(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	var about string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "about" {
			about = opt.StringValue()
		}
	}

	if err := r.Defer(); err != nil {
		return err
	}

	sections, err := h.chat.Hype(context.Background(), about)
	if err != nil {
		return r.Followup(&discordgo.WebhookParams{
			Content: "I have too much to say, please try again.",
		})
	}

	for _, section := range sections {
		if err := r.Followup(&discordgo.WebhookParams{Content: section}); err != nil {
			return err
		}
	}
	return nil
}
