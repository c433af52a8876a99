package usecases

import "errors"

// Domain errors for the music module. All of these are benign conditions
// reported to the user; none of them is fatal to the guild's controller.
var (
	// ErrNotConnected is returned when an operation requires an active voice session.
	ErrNotConnected = errors.New("not connected to a voice channel")

	// ErrUserNotInVoice is returned when the requester is not in a voice channel.
	ErrUserNotInVoice = errors.New("you must be in a voice channel")

	// ErrNotPlaying is returned when no track is currently playing.
	ErrNotPlaying = errors.New("nothing is currently playing")
)
