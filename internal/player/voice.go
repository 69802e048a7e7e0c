package player

import (
	"context"
	"fmt"
	"math"
	"strings"
)

const volumeStep = 0.1

// DefaultWakePhrases prefix every voice command
var DefaultWakePhrases = []string{"hey radio", "radio ai"}

// Favoriter saves an article to the listener's favorites
type Favoriter interface {
	AddFavorite(ctx context.Context, articleID int64) error
}

type Action string

const (
	ActionResume       Action = "resume"
	ActionPause        Action = "pause"
	ActionNext         Action = "next"
	ActionPrevious     Action = "previous"
	ActionVolumeUp     Action = "volume_up"
	ActionVolumeDown   Action = "volume_down"
	ActionNowPlaying   Action = "now_playing"
	ActionFavorite     Action = "favorite"
	ActionNone         Action = "none"
	ActionUnrecognized Action = "unrecognized"
)

// Reply describes what a voice command did
type Reply struct {
	Action  Action
	Message string
}

// VoiceCommands maps spoken transcripts onto controller operations
type VoiceCommands struct {
	controller  *Controller
	favorites   Favoriter
	wakePhrases []string
}

// NewVoiceCommands uses DefaultWakePhrases when none are given; favorites may be nil
func NewVoiceCommands(controller *Controller, favorites Favoriter, wakePhrases ...string) *VoiceCommands {
	if len(wakePhrases) == 0 {
		wakePhrases = DefaultWakePhrases
	}
	phrases := make([]string, len(wakePhrases))
	for i, p := range wakePhrases {
		phrases[i] = strings.ToLower(p)
	}
	return &VoiceCommands{controller: controller, favorites: favorites, wakePhrases: phrases}
}

// Process runs the command in transcript. It returns false when the
// transcript holds no wake phrase.
func (v *VoiceCommands) Process(ctx context.Context, transcript string) (Reply, bool) {
	command := strings.ToLower(strings.TrimSpace(transcript))

	woken := false
	for _, phrase := range v.wakePhrases {
		if strings.Contains(command, phrase) {
			woken = true
			command = strings.ReplaceAll(command, phrase, "")
		}
	}
	if !woken {
		return Reply{}, false
	}
	command = strings.Join(strings.Fields(command), " ")

	state := v.controller.State()
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(command, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("what") && has("playing"):
		if state.CurrentArticle == nil {
			return Reply{Action: ActionNowPlaying, Message: "Nothing is playing"}, true
		}
		return Reply{Action: ActionNowPlaying, Message: state.CurrentArticle.Title}, true

	case has("pause", "stop"):
		if !state.IsPlaying {
			return Reply{Action: ActionNone, Message: "Already paused"}, true
		}
		v.controller.PauseAudio()
		return Reply{Action: ActionPause, Message: "Paused playback"}, true

	case has("play"):
		if state.IsPlaying {
			return Reply{Action: ActionNone, Message: "Already playing"}, true
		}
		v.controller.ResumeAudio()
		return Reply{Action: ActionResume, Message: "Resuming playback"}, true

	case has("next", "skip"):
		v.controller.SkipNext()
		return Reply{Action: ActionNext, Message: "Next article"}, true

	case has("previous", "back"):
		v.controller.SkipPrevious()
		return Reply{Action: ActionPrevious, Message: "Previous article"}, true

	case has("volume up", "louder"):
		volume := stepVolume(state.Volume, volumeStep)
		v.controller.SetVolume(volume)
		return Reply{Action: ActionVolumeUp, Message: volumeMessage(volume)}, true

	case has("volume down", "quieter"):
		volume := stepVolume(state.Volume, -volumeStep)
		v.controller.SetVolume(volume)
		return Reply{Action: ActionVolumeDown, Message: volumeMessage(volume)}, true

	case has("add to favorites", "favorite this"):
		if state.CurrentArticle == nil || v.favorites == nil {
			return Reply{Action: ActionNone, Message: "Nothing to add to favorites"}, true
		}
		if err := v.favorites.AddFavorite(ctx, state.CurrentArticle.ID); err != nil {
			v.controller.logger.Warn("voice favorite failed", "article_id", state.CurrentArticle.ID, "error", err)
			return Reply{Action: ActionNone, Message: "Could not add to favorites"}, true
		}
		return Reply{Action: ActionFavorite, Message: "Added to favorites"}, true
	}

	return Reply{Action: ActionUnrecognized, Message: fmt.Sprintf("Command not recognized: %q", command)}, true
}

func stepVolume(volume, delta float64) float64 {
	return max(0, min(1, math.Round((volume+delta)*100)/100))
}

func volumeMessage(volume float64) string {
	return fmt.Sprintf("Volume: %d%%", int(math.Round(volume*100)))
}
