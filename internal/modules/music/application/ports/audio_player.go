package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// AudioPlayer defines the interface for audio playback operations. Completion
// is never reported synchronously from these calls; the audio subsystem
// delivers a track-end event on the module's event bus instead.
type AudioPlayer interface {
	// Play starts playback of the given track, clearing any paused state.
	Play(ctx context.Context, guildID snowflake.ID, track *domain.Track) error

	// Stop halts the current playback. A stopped track reaches the
	// controller through the same track-end event path as natural completion.
	Stop(ctx context.Context, guildID snowflake.ID) error

	// Pause pauses the current playback.
	Pause(ctx context.Context, guildID snowflake.ID) error

	// Resume resumes the paused playback.
	Resume(ctx context.Context, guildID snowflake.ID) error
}
