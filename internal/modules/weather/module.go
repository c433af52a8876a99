package weather

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"

	"github.com/warshanks/kcbot/internal/bot"
)

func init() {
	bot.Register(&Module{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*Module)(nil)

// Config holds the weather module configuration.
type Config struct {
	OWMToken string `env:"OWM_TOKEN,notEmpty"`
}

// Module provides the /weather current-conditions command.
type Module struct {
	config *Config
	client *Client
}

// Name returns the module name.
func (m *Module) Name() string {
	return "weather"
}

// Commands returns the slash commands for this module.
func (m *Module) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "weather",
			Description: "Report current conditions in a given location",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "city",
					Description: "City name (defaults to Tuscaloosa)",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "country_code",
					Description: "Two-letter country code (defaults to US)",
					Required:    false,
				},
			},
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *Module) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		"weather": m.handleWeather,
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
	m.client = NewClient(m.config.OWMToken)
	return nil
}

// Shutdown cleans up module resources.
func (m *Module) Shutdown() error {
	return nil
}

func (m *Module) handleWeather(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	city := "Tuscaloosa"
	countryCode := "US"
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "city":
			city = opt.StringValue()
		case "country_code":
			countryCode = opt.StringValue()
		}
	}

	if err := r.Defer(); err != nil {
		return err
	}

	location := fmt.Sprintf("%s,%s", titleCase(city), strings.ToUpper(countryCode))

	report, err := m.client.Current(context.Background(), location)
	if err != nil {
		slog.Error("weather lookup failed", "location", location, "error", err)
		return r.Followup(&discordgo.WebhookParams{
			Content: fmt.Sprintf("Could not fetch the weather for %s, try again later!", location),
		})
	}

	return r.Followup(&discordgo.WebhookParams{
		Content: formatReport(report),
	})
}

func formatReport(report *Report) string {
	var sb strings.Builder
	sb.WriteString("**Weather Report**\n")
	fmt.Fprintf(&sb, "**Location:** %s\n", report.Location)
	fmt.Fprintf(&sb, "**Status:** %s %s\n", titleCase(report.Status), report.Emoji())
	fmt.Fprintf(&sb, "**Temperature:** %.1f°F\n", report.TempF)
	fmt.Fprintf(&sb, "**Feels Like:** %.1f°F\n", report.FeelsLikeF)
	fmt.Fprintf(&sb, "**Wind Speed:** %.2f mph\n", report.WindSpeedMPH)
	fmt.Fprintf(&sb, "**Wind Direction:** %d°%s\n", report.WindDegrees, report.WindCardinal())
	fmt.Fprintf(&sb, "**Humidity:** %d%%\n", report.Humidity)
	fmt.Fprintf(&sb, "**Visibility:** %.1f mi.\n", report.VisibilityMiles)
	fmt.Fprintf(&sb, "**Rainfall:** Last hour: %.1fmm\n", report.RainLastHourMM)
	fmt.Fprintf(&sb, "**Report Generated:** %s UTC",
		time.Now().UTC().Format("01/02/2006 03:04:05 PM"))
	return sb.String()
}

// titleCase capitalizes the first letter of each word. The first rune is
// decoded as UTF-8 so non-ASCII place names survive intact.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		first, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(first)) + word[size:]
	}
	return strings.Join(words, " ")
}
