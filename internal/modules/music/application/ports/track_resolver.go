package ports

import (
	"context"

	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// TrackResolver resolves a free-text search term or direct video URL to a
// playable track. Playlist and livestream sources are rejected with a
// *domain.ResolutionError of kind ResolutionUnsupportedSource rather than
// crashing; all other lookup failures yield a *domain.ResolutionError too.
// Resolving has no side effects beyond the outbound network call.
type TrackResolver interface {
	Resolve(ctx context.Context, query string) (*domain.Track, error)
}
