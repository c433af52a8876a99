package chat

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/warshanks/kcbot/internal/bot"
	"github.com/warshanks/kcbot/internal/modules/chat/application"
	"github.com/warshanks/kcbot/internal/modules/chat/infrastructure"
	"github.com/warshanks/kcbot/internal/modules/chat/presentation"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Module provides conversational replies and the /hype command.
type Module struct {
	config   *Config
	handlers *presentation.Handlers
	listener *presentation.MessageListener
}

// Name returns the module name.
func (m *Module) Name() string {
	return "chat"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"hype": m.handlers.HandleHype,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *Module) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, message *discordgo.MessageCreate) {
			m.listener.HandleMessage(s, message)
		},
	}
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
	client := infrastructure.NewOpenAIClient(m.config.OpenAIKey, m.config.Model)
	service := application.NewChatService(client)

	m.handlers = presentation.NewHandlers(service)
	m.listener = presentation.NewMessageListener(service, m.config.ChatChannelIDs)

	if len(m.config.ChatChannelIDs) == 0 {
		slog.Info("chat module initialized without chat channels, only /hype is active")
	} else {
		slog.Info("chat module initialized", "channels", len(m.config.ChatChannelIDs))
	}

	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}
