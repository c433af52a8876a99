package domain

import (
	"testing"

	"github.com/disgoorg/snowflake/v2"
)

func TestNewPlayerState(t *testing.T) {
	state := NewPlayerState(snowflake.ID(1))

	if state.GuildID() != snowflake.ID(1) {
		t.Errorf("GuildID() = %v, want 1", state.GuildID())
	}
	if state.State() != StateIdle {
		t.Errorf("State() = %v, want StateIdle", state.State())
	}
	if state.CurrentTrack() != nil {
		t.Errorf("CurrentTrack() = %v, want nil", state.CurrentTrack())
	}
	if state.IsConnected() {
		t.Error("IsConnected() = true, want false")
	}
	if !state.Queue.IsEmpty() {
		t.Error("new state should have an empty queue")
	}
}

func TestPlayerState_Transitions(t *testing.T) {
	state := NewPlayerState(snowflake.ID(1))

	track := testTrack("song")
	state.SetCurrentTrack(track)
	state.SetState(StatePlaying)

	if state.State() != StatePlaying {
		t.Errorf("State() = %v, want StatePlaying", state.State())
	}
	if state.CurrentTrack() != track {
		t.Error("CurrentTrack() did not return the set track")
	}

	state.SetState(StatePaused)
	if state.State() != StatePaused {
		t.Errorf("State() = %v, want StatePaused", state.State())
	}

	state.SetCurrentTrack(nil)
	state.SetState(StateIdle)
	if state.State() != StateIdle || state.CurrentTrack() != nil {
		t.Error("state should settle back to idle with no current track")
	}
}

func TestPlayerState_VoiceConnection(t *testing.T) {
	state := NewPlayerState(snowflake.ID(1))

	state.SetConnectedChannel(snowflake.ID(42))
	if !state.IsConnected() {
		t.Error("IsConnected() = false after SetConnectedChannel")
	}
	if state.VoiceChannelID() != snowflake.ID(42) {
		t.Errorf("VoiceChannelID() = %v, want 42", state.VoiceChannelID())
	}

	// Moving to another channel replaces the association.
	state.SetConnectedChannel(snowflake.ID(43))
	if state.VoiceChannelID() != snowflake.ID(43) {
		t.Errorf("VoiceChannelID() = %v, want 43", state.VoiceChannelID())
	}

	state.SetDisconnected()
	if state.IsConnected() {
		t.Error("IsConnected() = true after SetDisconnected")
	}
	if state.VoiceChannelID() != 0 {
		t.Errorf("VoiceChannelID() = %v, want 0", state.VoiceChannelID())
	}
}

func TestPlaybackState_String(t *testing.T) {
	tests := []struct {
		state PlaybackState
		want  string
	}{
		{StateIdle, "idle"},
		{StatePlaying, "playing"},
		{StatePaused, "paused"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
