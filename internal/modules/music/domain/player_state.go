package domain

import (
	"github.com/disgoorg/snowflake/v2"
)

// PlaybackState enumerates the playback states of a guild's player. It
// replaces the two independent booleans of earlier revisions so that
// invalid combinations (playing and paused at once) are unrepresentable.
type PlaybackState int

const (
	StateIdle PlaybackState = iota
	StatePlaying
	StatePaused
)

// String returns a human-readable representation of the playback state.
func (s PlaybackState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// PlayerState holds all per-guild playback state: the pending queue, the
// currently playing track, the voice session target, and the text channel
// used for asynchronous notifications. Guilds never share a PlayerState.
type PlayerState struct {
	guildID               snowflake.ID
	voiceChannelID        snowflake.ID // Voice channel the session is connected to
	connected             bool
	notificationChannelID snowflake.ID // Text channel for notifications
	state                 PlaybackState
	current               *Track // Track being played; nil while Idle
	Queue                 Queue
}

// NewPlayerState creates a new PlayerState for the given guild.
func NewPlayerState(guildID snowflake.ID) *PlayerState {
	return &PlayerState{
		guildID: guildID,
		state:   StateIdle,
		Queue:   NewQueue(),
	}
}

// GuildID returns the guild ID.
func (p *PlayerState) GuildID() snowflake.ID {
	// No setter: guildID must not be modified after initialization
	return p.guildID
}

// State returns the current playback state.
func (p *PlayerState) State() PlaybackState {
	return p.state
}

// SetState sets the playback state.
func (p *PlayerState) SetState(state PlaybackState) {
	p.state = state
}

// CurrentTrack returns the track currently being played, or nil while idle.
func (p *PlayerState) CurrentTrack() *Track {
	return p.current
}

// SetCurrentTrack records the track whose playback has been initiated.
func (p *PlayerState) SetCurrentTrack(track *Track) {
	p.current = track
}

// IsConnected returns true if a voice session is established.
func (p *PlayerState) IsConnected() bool {
	return p.connected
}

// VoiceChannelID returns the voice channel the session is connected to.
func (p *PlayerState) VoiceChannelID() snowflake.ID {
	return p.voiceChannelID
}

// SetConnectedChannel records a successful connect or move to a voice channel.
func (p *PlayerState) SetConnectedChannel(channelID snowflake.ID) {
	p.voiceChannelID = channelID
	p.connected = true
}

// SetDisconnected clears the voice session association.
func (p *PlayerState) SetDisconnected() {
	p.voiceChannelID = 0
	p.connected = false
}

// NotificationChannelID returns the text channel for notifications.
func (p *PlayerState) NotificationChannelID() snowflake.ID {
	return p.notificationChannelID
}

// SetNotificationChannelID updates the text channel for notifications.
func (p *PlayerState) SetNotificationChannelID(channelID snowflake.ID) {
	p.notificationChannelID = channelID
}
