package tts

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/warshanks/kcbot/internal/bot"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Config holds the tts module configuration.
type Config struct {
	OpenAIKey string `env:"OPENAI_API_KEY,notEmpty"`
}

// Module provides the /say text-to-speech command.
type Module struct {
	config      *Config
	synthesizer *Synthesizer
}

// Name returns the module name.
func (m *Module) Name() string {
	return "tts"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "say",
			Description: "Convert text to speech",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "text",
					Description: "Text to speak",
					Required:    true,
				},
			},
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"say": m.handleSay,
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
	m.synthesizer = NewSynthesizer(m.config.OpenAIKey)
	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}

func (m *Module) handleSay(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	var text string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "text" {
			text = opt.StringValue()
		}
	}

	if err := r.Defer(); err != nil {
		return err
	}

	audio, err := m.synthesizer.Synthesize(context.Background(), text)
	if err != nil {
		slog.Error("speech synthesis failed", "error", err)
		return r.Followup(&discordgo.WebhookParams{
			Content: "Could not synthesize the speech, try again later!",
		})
	}

	return r.Followup(&discordgo.WebhookParams{
		Files: []*discordgo.File{
			{
				Name:        "output.mp3",
				ContentType: "audio/mpeg",
				Reader:      bytes.NewReader(audio),
			},
		},
	})
}
