package usecases

import (
	"context"
	"log/slog"
	"sync"

	"github.com/warshanks/kcbot/internal/modules/music/application/events"
	"github.com/warshanks/kcbot/internal/modules/music/application/ports"
)

// PlaybackEventHandler consumes bus events in background goroutines and
// feeds them back into the controller. Running completions through the bus
// keeps the callback one-shot and scheduled rather than a recursive call
// inside the audio subsystem's teardown.
type PlaybackEventHandler struct {
	player   *PlayerService
	notifier ports.Notifier
	bus      *events.Bus

	wg   sync.WaitGroup
	done chan struct{}
}

// NewPlaybackEventHandler creates a new PlaybackEventHandler.
func NewPlaybackEventHandler(
	player *PlayerService,
	notifier ports.Notifier,
	bus *events.Bus,
) *PlaybackEventHandler {
	return &PlaybackEventHandler{
		player:   player,
		notifier: notifier,
		bus:      bus,
		done:     make(chan struct{}),
	}
}

// Start begins listening for events in background goroutines.
func (h *PlaybackEventHandler) Start(ctx context.Context) {
	h.wg.Add(2)

	// Handle TrackEnded events
	go func() {
		defer h.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-h.done:
				return
			case event, ok := <-h.bus.TrackEnded():
				if !ok {
					return
				}
				h.player.HandleTrackEnd(ctx, event)
			}
		}
	}()

	// Handle PlaybackStarted events
	go func() {
		defer h.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case <-h.done:
				return
			case event, ok := <-h.bus.PlaybackStarted():
				if !ok {
					return
				}
				h.handlePlaybackStarted(event)
			}
		}
	}()

	slog.Debug("playback event handler started")
}

// Stop stops the event handler and waits for goroutines to finish.
func (h *PlaybackEventHandler) Stop() {
	close(h.done)
	h.wg.Wait()
	slog.Debug("playback event handler stopped")
}

func (h *PlaybackEventHandler) handlePlaybackStarted(event events.PlaybackStartedEvent) {
	if h.notifier == nil || event.NotificationChannelID == 0 {
		return
	}

	if err := h.notifier.SendNowPlaying(event.NotificationChannelID, event.Track); err != nil {
		slog.Error("failed to send now playing notification",
			"guild", event.GuildID,
			"error", err,
		)
	}
}
