package presentation

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/warshanks/kcbot/internal/bot"
	"github.com/warshanks/kcbot/internal/modules/music/application/usecases"
	"github.com/warshanks/kcbot/internal/modules/music/infrastructure"
)

// newIdleHandlers builds handlers over a player with no active sessions, for
// exercising the command replies that do not touch the audio backend.
func newIdleHandlers() *Handlers {
	repo := infrastructure.NewInMemoryPlayerStateRepository()
	player := usecases.NewPlayerService(repo, nil, nil, nil, nil, nil, nil)
	return NewHandlers(player)
}

func guildInteraction() *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			GuildID:   "100",
			ChannelID: "200",
		},
	}
}

func responseDescription(t *testing.T, r *bot.MockResponder) string {
	t.Helper()
	if r.LastResponse == nil || r.LastResponse.Data == nil ||
		len(r.LastResponse.Data.Embeds) == 0 {
		t.Fatal("no embed response recorded")
	}
	return r.LastResponse.Data.Embeds[0].Description
}

func TestHandleQueue_Empty(t *testing.T) {
	handlers := newIdleHandlers()
	responder := &bot.MockResponder{}

	if err := handlers.HandleQueue(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("HandleQueue() error: %v", err)
	}
	if got := responseDescription(t, responder); got != "No music in queue!" {
		t.Errorf("description = %q, want %q", got, "No music in queue!")
	}
}

func TestHandleSkip_NothingPlaying(t *testing.T) {
	handlers := newIdleHandlers()
	responder := &bot.MockResponder{}

	if err := handlers.HandleSkip(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("HandleSkip() error: %v", err)
	}
	if got := responseDescription(t, responder); got != "No music is playing!" {
		t.Errorf("description = %q, want %q", got, "No music is playing!")
	}
}

func TestHandlePause_NotConnected(t *testing.T) {
	handlers := newIdleHandlers()
	responder := &bot.MockResponder{}

	if err := handlers.HandlePause(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("HandlePause() error: %v", err)
	}
	if got := responseDescription(t, responder); got != "I'm not in a voice channel!" {
		t.Errorf("description = %q, want %q", got, "I'm not in a voice channel!")
	}
}

func TestHandleLeave_NotConnected(t *testing.T) {
	handlers := newIdleHandlers()
	responder := &bot.MockResponder{}

	if err := handlers.HandleLeave(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("HandleLeave() error: %v", err)
	}
	if got := responseDescription(t, responder); got != "I'm not in a voice channel!" {
		t.Errorf("description = %q, want %q", got, "I'm not in a voice channel!")
	}
}

func TestHandleClear_NoSessionIsBenign(t *testing.T) {
	handlers := newIdleHandlers()
	responder := &bot.MockResponder{}

	if err := handlers.HandleClear(nil, guildInteraction(), responder); err != nil {
		t.Fatalf("HandleClear() error: %v", err)
	}
	if got := responseDescription(t, responder); got != "Music queue cleared!" {
		t.Errorf("description = %q, want %q", got, "Music queue cleared!")
	}
}
