package player

import "math"

type EventType string

const (
	EventTimeUpdate     EventType = "timeupdate"
	EventDurationChange EventType = "durationchange"
	EventPlay           EventType = "play"
	EventPause          EventType = "pause"
	EventEnded          EventType = "ended"
	EventLoadStart      EventType = "loadstart"
	EventCanPlay        EventType = "canplay"
	EventError          EventType = "error"
)

// Event is a notification from the audio backend
type Event struct {
	Type     EventType
	Time     float64
	Duration float64
	Err      error
}

// HandleEvent applies a backend event. Events from an older generation are
// dropped and HandleEvent reports false.
func (c *Controller) HandleEvent(generation uint64, ev Event) bool {
	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		return false
	}

	switch ev.Type {
	case EventTimeUpdate:
		c.state.CurrentTime = ev.Time
	case EventDurationChange:
		if math.IsNaN(ev.Duration) || math.IsInf(ev.Duration, 0) || ev.Duration < 0 {
			c.state.Duration = 0
		} else {
			c.state.Duration = ev.Duration
		}
	case EventPlay:
		c.state.IsPlaying = true
		c.state.IsLoading = false
	case EventPause:
		c.state.IsPlaying = false
	case EventLoadStart:
		c.state.IsLoading = true
	case EventCanPlay:
		c.state.IsLoading = false
	case EventError:
		c.logger.Warn("audio playback error", "error", ev.Err)
		c.state.IsPlaying = false
		c.state.IsLoading = false
	case EventEnded:
		c.mu.Unlock()
		c.handleEnded()
		return true
	}
	c.mu.Unlock()
	c.notify()
	return true
}

// handleEnded records completion, then advances the queue or stops
func (c *Controller) handleEnded() {
	c.mu.Lock()
	articleID, _, hasArticle := c.progressLocked()
	hasArticle = hasArticle && !c.pending
	next := c.state.QueueIndex + 1
	if next < len(c.state.Queue) {
		c.mu.Unlock()
		if hasArticle {
			c.saveProgress(articleID, 100, true)
		}
		c.SkipNext()
		return
	}
	c.state.IsPlaying = false
	c.state.CurrentTime = 0
	c.mu.Unlock()
	c.notify()

	if hasArticle {
		c.saveProgress(articleID, 100, true)
	}
}
