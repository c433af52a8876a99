package bot

import "testing"

func TestLoadConfig(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.DiscordToken != "test-token" {
		t.Errorf("DiscordToken = %q, want test-token", cfg.DiscordToken)
	}
}

func TestLoadConfig_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should fail with an empty DISCORD_TOKEN")
	}
}
