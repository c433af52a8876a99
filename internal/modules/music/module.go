package music

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/warshanks/kcbot/internal/bot"
	"github.com/warshanks/kcbot/internal/modules/music/application/events"
	"github.com/warshanks/kcbot/internal/modules/music/application/usecases"
	"github.com/warshanks/kcbot/internal/modules/music/infrastructure"
	"github.com/warshanks/kcbot/internal/modules/music/presentation"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Module provides music playback commands backed by a Lavalink node.
type Module struct {
	config   *Config
	handlers *presentation.Handlers
	adapter  *infrastructure.LavalinkAdapter

	bus          *events.Bus
	eventHandler *usecases.PlaybackEventHandler

	ctx    context.Context
	cancel context.CancelFunc
}

// Name returns the module name.
func (m *Module) Name() string {
	return "music"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"play":   m.handlers.HandlePlay,
		"pause":  m.handlers.HandlePause,
		"resume": m.handlers.HandleResume,
		"skip":   m.handlers.HandleSkip,
		"queue":  m.handlers.HandleQueue,
		"clear":  m.handlers.HandleClear,
		"leave":  m.handlers.HandleLeave,
	}
}

// EventHandlers returns the event handlers for this module. Voice gateway
// events must reach the Lavalink adapter for sessions to establish.
func (m *Module) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(_ *discordgo.Session, event *discordgo.VoiceServerUpdate) {
			if m.adapter != nil {
				m.adapter.OnVoiceServerUpdate(event)
			}
		},
		func(_ *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			if m.adapter != nil {
				m.adapter.OnVoiceStateUpdate(event)
			}
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
	if deps.Session == nil {
		slog.Warn("music module initialized without session, playback disabled")
		m.handlers = presentation.NewHandlers(nil)
		return nil
	}

	m.ctx, m.cancel = context.WithCancel(context.Background())

	m.bus = events.NewBus(events.DefaultEventBufferSize)

	adapter, err := infrastructure.NewLavalinkAdapter(deps.Session, m.bus, infrastructure.LavalinkConfig{
		Address:  m.config.LavalinkAddress,
		Password: m.config.LavalinkPassword,
	})
	if err != nil {
		return err
	}
	m.adapter = adapter

	repo := infrastructure.NewInMemoryPlayerStateRepository()
	voiceState := infrastructure.NewDiscordVoiceStateProvider(deps.Session)
	notifier := infrastructure.NewDiscordNotifier(deps.Session)

	player := usecases.NewPlayerService(
		repo,
		adapter,
		adapter,
		adapter,
		voiceState,
		notifier,
		m.bus,
	)

	m.eventHandler = usecases.NewPlaybackEventHandler(player, notifier, m.bus)
	m.eventHandler.Start(m.ctx)

	m.handlers = presentation.NewHandlers(player)

	slog.Info("music module initialized with Lavalink")

	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	if m.cancel != nil {
		m.cancel()
	}

	if m.eventHandler != nil {
		m.eventHandler.Stop()
	}

	if m.bus != nil {
		m.bus.Close()
	}

	if m.adapter != nil {
		m.adapter.Link().Close()
	}

	return nil
}
