package usecases

import (
	"context"
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"

	"github.com/warshanks/kcbot/internal/modules/music/application/events"
	"github.com/warshanks/kcbot/internal/modules/music/application/ports"
	"github.com/warshanks/kcbot/internal/modules/music/domain"
)

// QueueDisplayLimit is the maximum number of queued titles shown by QueueView.
const QueueDisplayLimit = 5

// EnqueueInput contains the input for the Enqueue use case.
type EnqueueInput struct {
	GuildID               snowflake.ID
	UserID                snowflake.ID
	NotificationChannelID snowflake.ID
	Query                 string
}

// EnqueueOutput contains the result of the Enqueue use case.
type EnqueueOutput struct {
	Track           *domain.Track
	StartedPlayback bool // true if the enqueue found the player idle and began advancement
}

// QueueViewOutput contains the result of the QueueView use case.
type QueueViewOutput struct {
	Titles []string // at most QueueDisplayLimit entries, in queue order
	Total  int      // total pending requests, including those not shown
}

// PlayerService is the playback controller: the state machine tying the
// queue, the resolver, and the voice session together. All mutations of a
// guild's state happen under that guild's lock, so command handlers, the
// resolver call, and track-end events appear atomic with respect to a single
// guild while different guilds proceed independently.
type PlayerService struct {
	repo     domain.PlayerStateRepository
	resolver ports.TrackResolver
	audio    ports.AudioPlayer
	voice    ports.VoiceConnector
	state    ports.VoiceStateProvider
	notifier ports.Notifier
	bus      *events.Bus

	mu         sync.Mutex
	guildLocks map[snowflake.ID]*sync.Mutex
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	repo domain.PlayerStateRepository,
	resolver ports.TrackResolver,
	audio ports.AudioPlayer,
	voice ports.VoiceConnector,
	state ports.VoiceStateProvider,
	notifier ports.Notifier,
	bus *events.Bus,
) *PlayerService {
	return &PlayerService{
		repo:       repo,
		resolver:   resolver,
		audio:      audio,
		voice:      voice,
		state:      state,
		notifier:   notifier,
		bus:        bus,
		guildLocks: make(map[snowflake.ID]*sync.Mutex),
	}
}

// guildLock returns the mutex serializing all controller operations for a
// guild. Guilds never share a lock.
func (p *PlayerService) guildLock(guildID snowflake.ID) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.guildLocks[guildID]
	if !ok {
		lock = &sync.Mutex{}
		p.guildLocks[guildID] = lock
	}
	return lock
}

// Enqueue resolves the query and appends the result to the guild's queue.
// If the player is idle, advancement begins immediately; otherwise the track
// only waits its turn. A failed resolution mutates no state.
func (p *PlayerService) Enqueue(ctx context.Context, input EnqueueInput) (*EnqueueOutput, error) {
	voiceChannelID, err := p.state.GetUserVoiceChannel(input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}
	if voiceChannelID == 0 {
		return nil, ErrUserNotInVoice
	}

	// Resolve before taking the guild lock: the lookup is a slow network
	// call and touches no local state.
	track, err := p.resolver.Resolve(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	lock := p.guildLock(input.GuildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.GetOrCreate(input.GuildID)
	state.SetNotificationChannelID(input.NotificationChannelID)
	state.Queue.Enqueue(domain.NewQueuedRequest(track, voiceChannelID, input.UserID))

	started := false
	if state.State() == domain.StateIdle {
		p.advanceLocked(ctx, state)
		started = state.State() == domain.StatePlaying
	}

	return &EnqueueOutput{
		Track:           track,
		StartedPlayback: started,
	}, nil
}

// Pause pauses the current playback. A no-op while idle or already paused.
func (p *PlayerService) Pause(ctx context.Context, guildID snowflake.ID) error {
	lock := p.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(guildID)
	if state == nil {
		return ErrNotConnected
	}

	if state.State() != domain.StatePlaying {
		return nil
	}

	if err := p.audio.Pause(ctx, guildID); err != nil {
		return err
	}
	state.SetState(domain.StatePaused)

	return nil
}

// Resume resumes paused playback. A no-op while idle or already playing.
func (p *PlayerService) Resume(ctx context.Context, guildID snowflake.ID) error {
	lock := p.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(guildID)
	if state == nil {
		return ErrNotConnected
	}

	if state.State() != domain.StatePaused {
		return nil
	}

	if err := p.audio.Resume(ctx, guildID); err != nil {
		return err
	}
	state.SetState(domain.StatePlaying)

	return nil
}

// Skip stops the current track. Advancement to the next queued track happens
// through the track-end event, the same path as natural completion, so rapid
// skips serialize instead of racing. With nothing playing, Skip is a no-op.
func (p *PlayerService) Skip(ctx context.Context, guildID snowflake.ID) error {
	lock := p.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(guildID)
	if state == nil || state.State() == domain.StateIdle {
		return ErrNotPlaying
	}

	return p.audio.Stop(ctx, guildID)
}

// Clear empties the queue unconditionally and stops any in-flight playback.
// The stop's track-end event finds the queue empty and settles the player in
// Idle, so the Idle transition happens exactly once.
func (p *PlayerService) Clear(ctx context.Context, guildID snowflake.ID) error {
	lock := p.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(guildID)
	if state == nil {
		return nil
	}

	state.Queue.Clear()

	if state.State() != domain.StateIdle {
		return p.audio.Stop(ctx, guildID)
	}
	return nil
}

// Leave tears down the guild's voice session and discards all transient
// state. Reports ErrNotConnected as a benign condition if no session exists.
func (p *PlayerService) Leave(ctx context.Context, guildID snowflake.ID) error {
	lock := p.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(guildID)
	if state == nil || !state.IsConnected() {
		return ErrNotConnected
	}

	// Settle in Idle first so the teardown's track-end event does not
	// re-enter advancement.
	state.Queue.Clear()
	state.SetCurrentTrack(nil)
	state.SetState(domain.StateIdle)
	state.SetDisconnected()

	if err := p.voice.LeaveChannel(ctx, guildID); err != nil {
		return err
	}

	p.repo.Delete(guildID)
	return nil
}

// QueueView returns up to QueueDisplayLimit pending titles in queue order.
// The currently playing track is not part of the queue and is not listed.
func (p *PlayerService) QueueView(guildID snowflake.ID) *QueueViewOutput {
	lock := p.guildLock(guildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(guildID)
	if state == nil {
		return &QueueViewOutput{}
	}

	pending := state.Queue.PeekMany(QueueDisplayLimit)
	titles := make([]string, len(pending))
	for i, req := range pending {
		titles[i] = req.Track.Title
	}

	return &QueueViewOutput{
		Titles: titles,
		Total:  state.Queue.Len(),
	}
}

// HandleTrackEnd is the sole re-entry point driving queue advancement. It is
// invoked from the event bus when playback ends for any reason, natural end
// and explicit stop alike.
func (p *PlayerService) HandleTrackEnd(ctx context.Context, event events.TrackEndedEvent) {
	if !event.Reason.ShouldAdvanceQueue() {
		slog.Debug("track ended without advancing queue",
			"guild", event.GuildID,
			"reason", event.Reason,
		)
		return
	}

	lock := p.guildLock(event.GuildID)
	lock.Lock()
	defer lock.Unlock()

	state := p.repo.Get(event.GuildID)
	if state == nil || state.State() == domain.StateIdle {
		// Stale completion after a leave or clear already settled the player.
		return
	}

	state.SetCurrentTrack(nil)
	p.advanceLocked(ctx, state)
}

// advanceLocked dequeues the head request and initiates its playback. Called
// with the guild lock held. A request whose voice connection or playback
// initiation fails is reported and treated as immediately completed, so the
// queue never stalls on a bad entry. If a caught fault leaves no playable
// entry, the player falls back to Idle with the remaining queue intact for
// future enqueues.
func (p *PlayerService) advanceLocked(ctx context.Context, state *domain.PlayerState) {
	for {
		req := state.Queue.DequeueNext()
		if req == nil {
			// Queue drained: go idle but keep the session connected.
			state.SetCurrentTrack(nil)
			state.SetState(domain.StateIdle)
			return
		}

		if !state.IsConnected() || state.VoiceChannelID() != req.VoiceChannelID {
			if err := p.voice.JoinChannel(ctx, state.GuildID(), req.VoiceChannelID); err != nil {
				slog.Warn("failed to connect to voice channel",
					"guild", state.GuildID(),
					"channel", req.VoiceChannelID,
					"error", err,
				)
				p.notifyError(state, "Could not connect to the voice channel")
				continue
			}
			state.SetConnectedChannel(req.VoiceChannelID)
		}

		if err := p.audio.Play(ctx, state.GuildID(), req.Track); err != nil {
			slog.Warn("failed to start playback",
				"guild", state.GuildID(),
				"track", req.Track.Title,
				"error", err,
			)
			p.notifyError(state, "Could not play **"+req.Track.Title+"**, skipping it")
			continue
		}

		state.SetCurrentTrack(req.Track)
		state.SetState(domain.StatePlaying)

		if p.bus != nil {
			p.bus.PublishPlaybackStarted(events.PlaybackStartedEvent{
				GuildID:               state.GuildID(),
				Track:                 req.Track,
				NotificationChannelID: state.NotificationChannelID(),
			})
		}
		return
	}
}

func (p *PlayerService) notifyError(state *domain.PlayerState, message string) {
	if p.notifier == nil || state.NotificationChannelID() == 0 {
		return
	}
	if err := p.notifier.SendError(state.NotificationChannelID(), message); err != nil {
		slog.Error("failed to send error notification",
			"guild", state.GuildID(),
			"error", err,
		)
	}
}
