package player

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"radioai/internal/models"
)

const defaultVolume = 0.8

// Backend is the audio element the controller drives. Events produced after
// Load(generation, ...) must be reported with that generation.
type Backend interface {
	Load(generation uint64, src string) error
	Play() error
	Pause()
	Seek(seconds float64)
	SetVolume(volume float64)
}

// ProgressSaver persists listening progress as a percentage
type ProgressSaver interface {
	SaveProgress(ctx context.Context, articleID int64, progress float64, completed bool) error
}

// State is a snapshot of the player
type State struct {
	CurrentArticle *models.Article
	IsPlaying      bool
	CurrentTime    float64
	Duration       float64
	Queue          []models.Article
	QueueIndex     int
	Volume         float64
	IsLoading      bool
}

type Options struct {
	// AudioURL maps an article id to its audio source
	AudioURL func(articleID int64) string
	Saver    ProgressSaver
	Logger   *slog.Logger
}

// Controller is the playback and queue state machine. The queue cursor is
// -1 or a valid index into the queue.
type Controller struct {
	backend  Backend
	audioURL func(int64) string
	saver    ProgressSaver
	logger   *slog.Logger

	mu          sync.Mutex
	state       State
	generation  uint64
	// pending is set while the current article has not been loaded into the backend
	pending     bool
	subscribers map[int]func(State)
	nextSub     int
}

func New(backend Backend, opts Options) *Controller {
	audioURL := opts.AudioURL
	if audioURL == nil {
		audioURL = func(id int64) string { return fmt.Sprintf("/api/articles/%d/audio", id) }
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	backend.SetVolume(defaultVolume)
	return &Controller{
		backend:     backend,
		audioURL:    audioURL,
		saver:       opts.Saver,
		logger:      logger,
		state:       State{QueueIndex: -1, Volume: defaultVolume},
		subscribers: make(map[int]func(State)),
	}
}

// State returns a copy of the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Generation returns the id of the most recent load
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Subscribe registers fn to receive every state change and returns a
// function that removes it
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// PlayArticle loads and plays article without touching the queue
func (c *Controller) PlayArticle(article models.Article) {
	c.mu.Lock()
	c.beginLoad(article)
	gen := c.generation
	c.mu.Unlock()

	c.loadAndPlay(gen, article.ID)
}

func (c *Controller) PauseAudio() {
	c.backend.Pause()

	c.mu.Lock()
	c.state.IsPlaying = false
	articleID, percent, ok := c.progressLocked()
	ok = ok && !c.pending
	c.mu.Unlock()
	c.notify()

	if ok {
		c.saveProgress(articleID, percent, false)
	}
}

// ResumeAudio continues playback, loading the current article first when the
// queue was replaced since the last load
func (c *Controller) ResumeAudio() {
	c.mu.Lock()
	if c.state.CurrentArticle == nil {
		c.mu.Unlock()
		return
	}
	if c.pending {
		article := *c.state.CurrentArticle
		c.beginLoad(article)
		gen := c.generation
		c.mu.Unlock()
		c.loadAndPlay(gen, article.ID)
		return
	}
	gen := c.generation
	c.mu.Unlock()

	err := c.backend.Play()

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.Warn("failed to resume playback", "error", err)
	} else {
		c.state.IsPlaying = true
	}
	c.mu.Unlock()
	c.notify()
}

// SkipNext plays the next queued article; a no-op at the end of the queue
func (c *Controller) SkipNext() {
	c.skip(1)
}

// SkipPrevious plays the previous queued article; a no-op at the start
func (c *Controller) SkipPrevious() {
	c.skip(-1)
}

func (c *Controller) skip(delta int) {
	c.mu.Lock()
	index := c.state.QueueIndex + delta
	if index < 0 || index >= len(c.state.Queue) {
		c.mu.Unlock()
		return
	}
	article := c.state.Queue[index]
	c.state.QueueIndex = index
	c.beginLoad(article)
	gen := c.generation
	c.mu.Unlock()

	c.loadAndPlay(gen, article.ID)
}

// SetQueue replaces the queue and makes articles[startIndex] current without
// playing it. Any playing audio is stopped and its events are dropped. An out
// of range start index is clamped.
func (c *Controller) SetQueue(articles []models.Article, startIndex int) {
	c.mu.Lock()
	c.state.Queue = append([]models.Article(nil), articles...)
	if len(articles) == 0 {
		c.state.QueueIndex = -1
		c.mu.Unlock()
		c.notify()
		return
	}
	startIndex = max(0, min(startIndex, len(articles)-1))
	c.state.QueueIndex = startIndex
	current := articles[startIndex]
	wasActive := c.state.IsPlaying || c.state.IsLoading

	c.generation++
	c.pending = true
	c.state.CurrentArticle = &current
	c.state.IsPlaying = false
	c.state.IsLoading = false
	c.state.CurrentTime = 0
	c.state.Duration = 0
	c.mu.Unlock()

	if wasActive {
		c.backend.Pause()
	}
	c.notify()
}

func (c *Controller) AddToQueue(article models.Article) {
	c.mu.Lock()
	c.state.Queue = append(c.state.Queue, article)
	c.mu.Unlock()
	c.notify()
}

// RemoveFromQueue removes the article at index, keeping the cursor on the
// same article when an earlier entry is removed
func (c *Controller) RemoveFromQueue(index int) {
	c.mu.Lock()
	if index < 0 || index >= len(c.state.Queue) {
		c.mu.Unlock()
		return
	}
	c.state.Queue = append(c.state.Queue[:index:index], c.state.Queue[index+1:]...)
	switch {
	case len(c.state.Queue) == 0:
		c.state.QueueIndex = -1
	case index < c.state.QueueIndex:
		c.state.QueueIndex--
	case c.state.QueueIndex >= len(c.state.Queue):
		c.state.QueueIndex = len(c.state.Queue) - 1
	}
	c.mu.Unlock()
	c.notify()
}

// SetVolume sets the volume, clamped to [0, 1]
func (c *Controller) SetVolume(volume float64) {
	volume = max(0, min(volume, 1))
	c.backend.SetVolume(volume)

	c.mu.Lock()
	c.state.Volume = volume
	c.mu.Unlock()
	c.notify()
}

// SeekTo moves the playhead, clamped to [0, duration] once the duration is known
func (c *Controller) SeekTo(seconds float64) {
	c.mu.Lock()
	seconds = max(0, seconds)
	if c.state.Duration > 0 {
		seconds = min(seconds, c.state.Duration)
	}
	c.mu.Unlock()

	c.backend.Seek(seconds)

	c.mu.Lock()
	c.state.CurrentTime = seconds
	c.mu.Unlock()
	c.notify()
}

// beginLoad starts a new generation for article. Caller holds the lock.
func (c *Controller) beginLoad(article models.Article) {
	c.generation++
	c.pending = false
	c.state.CurrentArticle = &article
	c.state.IsLoading = true
	c.state.IsPlaying = false
	c.state.CurrentTime = 0
	c.state.Duration = 0
}

func (c *Controller) loadAndPlay(gen uint64, articleID int64) {
	c.notify()

	err := c.backend.Load(gen, c.audioURL(articleID))
	if err == nil {
		err = c.backend.Play()
	}

	c.mu.Lock()
	if gen != c.generation {
		// a newer load owns the state
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.Warn("failed to play audio", "article_id", articleID, "error", err)
		c.state.IsLoading = false
		c.state.IsPlaying = false
	}
	c.mu.Unlock()
	c.notify()
}

// progressLocked returns the current article and its progress percentage.
// Caller holds the lock.
func (c *Controller) progressLocked() (int64, float64, bool) {
	if c.state.CurrentArticle == nil {
		return 0, 0, false
	}
	return c.state.CurrentArticle.ID, ProgressPercent(c.state.CurrentTime, c.state.Duration), true
}

func (c *Controller) saveProgress(articleID int64, percent float64, completed bool) {
	if c.saver == nil {
		return
	}
	if err := c.saver.SaveProgress(context.Background(), articleID, percent, completed); err != nil {
		c.logger.Warn("failed to save listening progress", "article_id", articleID, "error", err)
	}
}

func (c *Controller) snapshot() State {
	s := c.state
	s.Queue = append([]models.Article(nil), c.state.Queue...)
	if c.state.CurrentArticle != nil {
		current := *c.state.CurrentArticle
		s.CurrentArticle = &current
	}
	return s
}

func (c *Controller) notify() {
	c.mu.Lock()
	snapshot := c.snapshot()
	subs := make([]func(State), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
