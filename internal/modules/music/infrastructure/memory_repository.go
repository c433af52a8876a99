package infrastructure

import (
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// InMemoryPlayerStateRepository is an in-memory implementation of PlayerStateRepository.
type InMemoryPlayerStateRepository struct {
	mu     sync.RWMutex
	states map[snowflake.ID]*domain.PlayerState
}

// NewInMemoryPlayerStateRepository creates a new InMemoryPlayerStateRepository.
func NewInMemoryPlayerStateRepository() *InMemoryPlayerStateRepository {
	return &InMemoryPlayerStateRepository{
		states: make(map[snowflake.ID]*domain.PlayerState),
	}
}

// Get returns the PlayerState for the given guild, or nil if not exists.
func (r *InMemoryPlayerStateRepository) Get(guildID snowflake.ID) *domain.PlayerState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[guildID]
}

// GetOrCreate returns the PlayerState for the given guild, creating an idle
// one if none exists yet.
func (r *InMemoryPlayerStateRepository) GetOrCreate(guildID snowflake.ID) *domain.PlayerState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, exists := r.states[guildID]
	if !exists {
		state = domain.NewPlayerState(guildID)
		r.states[guildID] = state
	}
	return state
}

// Delete removes the PlayerState for the given guild.
func (r *InMemoryPlayerStateRepository) Delete(guildID snowflake.ID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, guildID)
}

// Count returns the number of stored player states.
func (r *InMemoryPlayerStateRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}

var _ domain.PlayerStateRepository = (*InMemoryPlayerStateRepository)(nil)
