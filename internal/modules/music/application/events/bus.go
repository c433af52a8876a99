package events

import (
	"log/slog"
	"sync"
)

// DefaultEventBufferSize is the default buffer size for event channels.
const DefaultEventBufferSize = 100

// Bus provides a channel-based event bus for async event handling.
type Bus struct {
	trackEnded      chan TrackEndedEvent
	playbackStarted chan PlaybackStartedEvent

	closed bool
	mu     sync.RWMutex
}

// NewBus creates a new Bus with the given buffer size.
func NewBus(bufferSize int) *Bus {
	if bufferSize <= 0 {
		bufferSize = DefaultEventBufferSize
	}

	return &Bus{
		trackEnded:      make(chan TrackEndedEvent, bufferSize),
		playbackStarted: make(chan PlaybackStartedEvent, bufferSize),
	}
}

// PublishTrackEnded publishes a TrackEndedEvent.
// Non-blocking: if the channel buffer is full, the event is dropped with a warning.
func (b *Bus) PublishTrackEnded(event TrackEndedEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("attempted to publish to closed event bus", "type", "TrackEnded")
		return
	}

	select {
	case b.trackEnded <- event:
		slog.Debug("published event", "type", "TrackEnded", "guild", event.GuildID)
	default:
		slog.Warn("event buffer full, dropping event", "type", "TrackEnded")
	}
}

// PublishPlaybackStarted publishes a PlaybackStartedEvent.
// Non-blocking: if the channel buffer is full, the event is dropped with a warning.
func (b *Bus) PublishPlaybackStarted(event PlaybackStartedEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		slog.Warn("attempted to publish to closed event bus", "type", "PlaybackStarted")
		return
	}

	select {
	case b.playbackStarted <- event:
		slog.Debug("published event", "type", "PlaybackStarted", "guild", event.GuildID)
	default:
		slog.Warn("event buffer full, dropping event", "type", "PlaybackStarted")
	}
}

// TrackEnded returns the channel for TrackEndedEvent.
func (b *Bus) TrackEnded() <-chan TrackEndedEvent {
	return b.trackEnded
}

// PlaybackStarted returns the channel for PlaybackStartedEvent.
func (b *Bus) PlaybackStarted() <-chan PlaybackStartedEvent {
	return b.playbackStarted
}

// Close closes all event channels.
// After calling Close, publishing will no longer send events.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	close(b.trackEnded)
	close(b.playbackStarted)

	slog.Debug("event bus closed")
}
