package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/application/events"
	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

func mockTrack(title string) *domain.Track {
	return &domain.Track{
		ID:       domain.TrackID("id-" + title),
		Encoded:  "encoded-" + title,
		Title:    title,
		Artist:   "artist",
		Duration: 3 * time.Minute,
	}
}

type mockRepository struct {
	mu     sync.Mutex
	states map[snowflake.ID]*domain.PlayerState
}

func newMockRepository() *mockRepository {
	return &mockRepository{states: make(map[snowflake.ID]*domain.PlayerState)}
}

func (m *mockRepository) Get(guildID snowflake.ID) *domain.PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[guildID]
}

func (m *mockRepository) GetOrCreate(guildID snowflake.ID) *domain.PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.states[guildID]
	if !ok {
		state = domain.NewPlayerState(guildID)
		m.states[guildID] = state
	}
	return state
}

func (m *mockRepository) Delete(guildID snowflake.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, guildID)
}

type mockResolver struct {
	tracks map[string]*domain.Track
	err    error
}

func newMockResolver() *mockResolver {
	return &mockResolver{tracks: make(map[string]*domain.Track)}
}

func (m *mockResolver) Resolve(_ context.Context, query string) (*domain.Track, error) {
	if m.err != nil {
		return nil, m.err
	}
	if track, ok := m.tracks[query]; ok {
		return track, nil
	}
	return nil, domain.NewResolutionError(domain.ResolutionNoResults, query, nil)
}

type mockAudioPlayer struct {
	played  []string // track titles in play order
	stops   int
	pauses  int
	resumes int

	playErrFor map[string]error // title -> error
	stopErr    error
	pauseErr   error
	resumeErr  error
}

func (m *mockAudioPlayer) Play(_ context.Context, _ snowflake.ID, track *domain.Track) error {
	if err := m.playErrFor[track.Title]; err != nil {
		return err
	}
	m.played = append(m.played, track.Title)
	return nil
}

func (m *mockAudioPlayer) Stop(_ context.Context, _ snowflake.ID) error {
	if m.stopErr != nil {
		return m.stopErr
	}
	m.stops++
	return nil
}

func (m *mockAudioPlayer) Pause(_ context.Context, _ snowflake.ID) error {
	if m.pauseErr != nil {
		return m.pauseErr
	}
	m.pauses++
	return nil
}

func (m *mockAudioPlayer) Resume(_ context.Context, _ snowflake.ID) error {
	if m.resumeErr != nil {
		return m.resumeErr
	}
	m.resumes++
	return nil
}

type mockVoiceConnector struct {
	joined  []snowflake.ID // channel IDs in join order
	left    []snowflake.ID // guild IDs in leave order
	joinErr error
}

func (m *mockVoiceConnector) JoinChannel(_ context.Context, _, channelID snowflake.ID) error {
	if m.joinErr != nil {
		return m.joinErr
	}
	m.joined = append(m.joined, channelID)
	return nil
}

func (m *mockVoiceConnector) LeaveChannel(_ context.Context, guildID snowflake.ID) error {
	m.left = append(m.left, guildID)
	return nil
}

type mockVoiceStateProvider struct {
	channels map[snowflake.ID]snowflake.ID // userID -> voice channel
}

func (m *mockVoiceStateProvider) GetUserVoiceChannel(
	_, userID snowflake.ID,
) (snowflake.ID, error) {
	return m.channels[userID], nil
}

type mockNotifier struct {
	mu         sync.Mutex
	nowPlaying []string
	errors     []string
}

func (m *mockNotifier) SendNowPlaying(_ snowflake.ID, track *domain.Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nowPlaying = append(m.nowPlaying, track.Title)
	return nil
}

func (m *mockNotifier) SendError(_ snowflake.ID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, message)
	return nil
}

func (m *mockNotifier) nowPlayingTitles() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.nowPlaying...)
}

type testFixture struct {
	service  *PlayerService
	repo     *mockRepository
	resolver *mockResolver
	audio    *mockAudioPlayer
	voice    *mockVoiceConnector
	state    *mockVoiceStateProvider
	notifier *mockNotifier
	bus      *events.Bus
}

func newTestFixture() *testFixture {
	f := &testFixture{
		repo:     newMockRepository(),
		resolver: newMockResolver(),
		audio:    &mockAudioPlayer{playErrFor: make(map[string]error)},
		voice:    &mockVoiceConnector{},
		state:    &mockVoiceStateProvider{channels: make(map[snowflake.ID]snowflake.ID)},
		notifier: &mockNotifier{},
		bus:      events.NewBus(16),
	}
	f.service = NewPlayerService(
		f.repo, f.resolver, f.audio, f.voice, f.state, f.notifier, f.bus,
	)
	return f
}
