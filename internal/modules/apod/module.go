package apod

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/warshanks/kcbot/internal/bot"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Config holds the apod module configuration.
type Config struct {
	NASAToken string `env:"NASA_TOKEN,notEmpty"`
}

// Module provides the /apod Astronomy Picture of the Day command.
type Module struct {
	config *Config
	client *Client
}

// Name returns the module name.
func (m *Module) Name() string {
	return "apod"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "apod",
			Description: "Get the Astronomy Picture of the Day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "Date in YYYY-MM-DD format (defaults to today)",
					Required:    false,
				},
			},
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"apod": m.handleAPOD,
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
	m.client = NewClient(m.config.NASAToken)
	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}

func (m *Module) handleAPOD(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	var date string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "date" {
			date = opt.StringValue()
		}
	}

	if err := r.Defer(); err != nil {
		return err
	}

	picture, err := m.client.Fetch(context.Background(), date)
	if err != nil {
		slog.Error("APOD lookup failed", "date", date, "error", err)
		return r.Followup(&discordgo.WebhookParams{
			Content: "Could not fetch the Astronomy Picture of the Day, try again later!",
		})
	}

	return r.Followup(&discordgo.WebhookParams{
		Content: formatPicture(picture),
	})
}

func formatPicture(picture *Picture) string {
	copyrights := strings.TrimSpace(picture.Copyright)
	if copyrights == "" {
		copyrights = "No copyright info provided"
	}

	return fmt.Sprintf("**%s**\n\n%s\n\n**Date:** %s\n**Credits:** %s\n%s",
		picture.Title,
		picture.Explanation,
		picture.Date,
		copyrights,
		picture.ImageURL(),
	)
}
