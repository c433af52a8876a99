package bot

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the settings shared by the whole bot, read from the process
// environment at startup. Module-specific settings live in each module's own
// Config type.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`
}

// LoadConfig reads Config from the environment. A missing required variable
// surfaces as an error rather than a half-filled struct.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing bot configuration: %w", err)
	}
	return &cfg, nil
}
