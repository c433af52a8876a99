package image

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/warshanks/kcbot/internal/bot"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Config holds the image module configuration.
type Config struct {
	OpenAIKey string `env:"OPENAI_API_KEY,notEmpty"`
}

// Module provides the /dall-e image generation command.
type Module struct {
	config    *Config
	generator *Generator
}

// Name returns the module name.
func (m *Module) Name() string {
	return "image"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "dall-e",
			Description: "Generate an image from a prompt",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "prompt",
					Description: "What to draw",
					Required:    true,
				},
			},
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"dall-e": m.handleDallE,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *Module) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *Module) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *Module) Init(deps bot.ModuleDependencies) error {
	m.generator = NewGenerator(m.config.OpenAIKey)
	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}

func (m *Module) handleDallE(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	var prompt string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "prompt" {
			prompt = opt.StringValue()
		}
	}

	if err := r.Defer(); err != nil {
		return err
	}

	img, err := m.generator.Generate(context.Background(), prompt)
	if err != nil {
		slog.Error("image generation failed", "error", err)
		return r.Followup(&discordgo.WebhookParams{
			Content: "Could not generate the image, try again later!",
		})
	}

	caption := fmt.Sprintf("%q by KC & %s c. %d",
		prompt, interactionUserName(i), time.Now().Year())

	return r.Followup(&discordgo.WebhookParams{
		Content: caption,
		Files: []*discordgo.File{
			{
				Name:        "dalle.png",
				ContentType: "image/png",
				Reader:      bytes.NewReader(img),
			},
		},
	})
}

// interactionUserName returns the invoking user's name for guild and DM
// interactions alike.
func interactionUserName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return "unknown"
}
