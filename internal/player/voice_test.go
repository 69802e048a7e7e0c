package player

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radioai/internal/models"
)

type fakeFavoriter struct {
	added []int64
	err   error
}

func (f *fakeFavoriter) AddFavorite(_ context.Context, articleID int64) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, articleID)
	return nil
}

// playing returns a controller that is playing the first of a three item queue
func playing(t *testing.T) (*Controller, *fakeBackend) {
	t.Helper()
	c, backend, _ := newController(t)
	c.SetQueue(articles(1, 2, 3), 0)
	c.PlayArticle(c.State().Queue[0])
	c.HandleEvent(c.Generation(), Event{Type: EventPlay})
	require.True(t, c.State().IsPlaying)
	return c, backend
}

func TestVoice_RequiresWakePhrase(t *testing.T) {
	c, backend := playing(t)
	voice := NewVoiceCommands(c, nil)

	_, ok := voice.Process(context.Background(), "pause please")
	assert.False(t, ok)
	assert.Equal(t, 0, backend.pauses)
	assert.True(t, c.State().IsPlaying)
}

func TestVoice_Commands(t *testing.T) {
	tests := []struct {
		transcript string
		action     Action
		message    string
		check      func(t *testing.T, c *Controller)
	}{
		{"Hey Radio, pause", ActionPause, "Paused playback", func(t *testing.T, c *Controller) {
			assert.False(t, c.State().IsPlaying)
		}},
		{"hey radio stop playing", ActionPause, "Paused playback", nil},
		{"hey radio play", ActionNone, "Already playing", nil},
		{"radio ai next", ActionNext, "Next article", func(t *testing.T, c *Controller) {
			assert.Equal(t, 1, c.State().QueueIndex)
		}},
		{"hey radio skip this one", ActionNext, "Next article", nil},
		{"hey radio go back", ActionPrevious, "Previous article", func(t *testing.T, c *Controller) {
			assert.Equal(t, 0, c.State().QueueIndex, "already at the start")
		}},
		{"hey radio volume up", ActionVolumeUp, "Volume: 90%", func(t *testing.T, c *Controller) {
			assert.Equal(t, 0.9, c.State().Volume)
		}},
		{"hey radio quieter", ActionVolumeDown, "Volume: 70%", func(t *testing.T, c *Controller) {
			assert.Equal(t, 0.7, c.State().Volume)
		}},
		{"hey radio what's playing", ActionNowPlaying, "Article A", nil},
		{"hey radio dance", ActionUnrecognized, `Command not recognized: "dance"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			c, _ := playing(t)
			voice := NewVoiceCommands(c, nil)

			reply, ok := voice.Process(context.Background(), tt.transcript)
			require.True(t, ok)
			assert.Equal(t, tt.action, reply.Action)
			assert.Equal(t, tt.message, reply.Message)
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestVoice_ResumeWhenPaused(t *testing.T) {
	c, _ := playing(t)
	c.PauseAudio()
	voice := NewVoiceCommands(c, nil)

	reply, ok := voice.Process(context.Background(), "hey radio play")
	require.True(t, ok)
	assert.Equal(t, ActionResume, reply.Action)
	assert.True(t, c.State().IsPlaying)
}

func TestVoice_VolumeLimits(t *testing.T) {
	c, _ := playing(t)
	voice := NewVoiceCommands(c, nil)

	for i := 0; i < 5; i++ {
		voice.Process(context.Background(), "hey radio louder")
	}
	assert.Equal(t, 1.0, c.State().Volume)

	for i := 0; i < 15; i++ {
		voice.Process(context.Background(), "hey radio volume down")
	}
	assert.Equal(t, 0.0, c.State().Volume)
}

func TestVoice_Favorite(t *testing.T) {
	c, _ := playing(t)
	favorites := &fakeFavoriter{}
	voice := NewVoiceCommands(c, favorites)

	reply, _ := voice.Process(context.Background(), "hey radio add to favorites")
	assert.Equal(t, ActionFavorite, reply.Action)
	assert.Equal(t, []int64{1}, favorites.added)

	favorites.err = errors.New("offline")
	reply, _ = voice.Process(context.Background(), "hey radio favorite this")
	assert.Equal(t, ActionNone, reply.Action)
	assert.Equal(t, "Could not add to favorites", reply.Message)
}

func TestVoice_NothingPlaying(t *testing.T) {
	c, _, _ := newController(t)
	voice := NewVoiceCommands(c, &fakeFavoriter{}, "computer")

	reply, ok := voice.Process(context.Background(), "Computer, what is playing")
	require.True(t, ok)
	assert.Equal(t, "Nothing is playing", reply.Message)

	reply, _ = voice.Process(context.Background(), "computer favorite this")
	assert.Equal(t, ActionNone, reply.Action)

	_, ok = voice.Process(context.Background(), "hey radio pause")
	assert.False(t, ok, "custom wake phrases replace the defaults")
}

func TestVoice_PlayingArticleTitle(t *testing.T) {
	c, _, _ := newController(t)
	c.PlayArticle(models.Article{ID: 9, Title: "Markets Rally"})
	voice := NewVoiceCommands(c, nil)

	reply, _ := voice.Process(context.Background(), "hey radio what's playing")
	assert.Equal(t, "Markets Rally", reply.Message)
}
