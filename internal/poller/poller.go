package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"radioai/internal/aggregator"
	"radioai/internal/config"
	"radioai/internal/metrics"
	"radioai/internal/models"
	"radioai/internal/storage"
)

// ErrUnknownSource is returned by ForcePoll for a name that is not configured
var ErrUnknownSource = errors.New("unknown feed source")

// Poller ingests feed sources and podcast feeds into the store on a ticker
type Poller struct {
	aggregator   *aggregator.Aggregator
	storage      storage.Storage
	sources      map[string]config.FeedSource
	pollInterval time.Duration
	logger       *slog.Logger

	cancel     context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.RWMutex
	lastPolled map[string]time.Time
	isPolling  bool

	// serializes the exists check and insert across sources
	ingestMu sync.Mutex
}

func New(agg *aggregator.Aggregator, store storage.Storage, sources []config.FeedSource, pollInterval time.Duration, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	if pollInterval <= 0 {
		pollInterval = config.DefaultPollInterval
	}
	byName := make(map[string]config.FeedSource, len(sources))
	for _, s := range sources {
		byName[s.Name] = s
	}
	return &Poller{
		aggregator:   agg,
		storage:      store,
		sources:      byName,
		pollInterval: pollInterval,
		logger:       logger,
		lastPolled:   make(map[string]time.Time),
	}
}

func (p *Poller) Start() {
	p.mu.Lock()
	if p.isPolling {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.isPolling = true
	p.mu.Unlock()

	p.logger.Info("starting feed poller", "interval", p.pollInterval, "sources", len(p.sources))

	p.wg.Add(1)
	go p.pollLoop(ctx)
}

func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.isPolling {
		p.mu.Unlock()
		return
	}
	p.isPolling = false
	cancel := p.cancel
	p.mu.Unlock()

	p.logger.Info("stopping feed poller")
	cancel()
	p.wg.Wait()
	p.logger.Info("feed poller stopped")
}

func (p *Poller) IsPolling() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isPolling
}

func (p *Poller) pollLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	p.pollAll(ctx)

	for {
		select {
		case <-ticker.C:
			p.pollAll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) pollAll(ctx context.Context) {
	p.logger.Debug("polling feed sources")

	var wg sync.WaitGroup
	for name := range p.sources {
		wg.Add(1)
		go func(source config.FeedSource) {
			defer wg.Done()
			if _, err := p.pollSource(ctx, source); err != nil {
				p.logger.Warn("feed source poll failed", "source", source.Name, "error", err)
			}
		}(p.sources[name])
	}
	wg.Wait()

	if _, err := p.PollPodcasts(ctx); err != nil {
		p.logger.Warn("podcast poll failed", "error", err)
	}
}

// ForcePoll polls one source immediately and returns the number of new articles
func (p *Poller) ForcePoll(ctx context.Context, name string) (int, error) {
	source, exists := p.sources[name]
	if !exists {
		return 0, fmt.Errorf("source '%s': %w", name, ErrUnknownSource)
	}
	p.logger.Info("force polling source", "source", name)
	return p.pollSource(ctx, source)
}

func (p *Poller) pollSource(ctx context.Context, source config.FeedSource) (int, error) {
	defer p.markPolled(source.Name)

	articles, err := p.aggregator.FetchArticles(ctx, source, func(link string) bool {
		return !p.known(ctx, link)
	})
	if err != nil {
		return 0, err
	}

	created := 0
	for _, in := range articles {
		ok, err := p.insert(ctx, in)
		if err != nil {
			p.logger.Warn("failed to store ingested article", "source", source.Name, "url", in.SourceURL, "error", err)
			continue
		}
		if ok {
			created++
		}
	}

	if created > 0 {
		metrics.RecordIngested(source.Name, created)
	}
	p.logger.Info("feed source polled", "source", source.Name, "fetched", len(articles), "created", created)
	return created, nil
}

func (p *Poller) known(ctx context.Context, sourceURL string) bool {
	_, err := p.storage.GetArticleBySourceURL(ctx, sourceURL)
	return err == nil
}

// insert stores in unless an article with the same source url exists
func (p *Poller) insert(ctx context.Context, in models.InsertArticle) (bool, error) {
	p.ingestMu.Lock()
	defer p.ingestMu.Unlock()

	_, err := p.storage.GetArticleBySourceURL(ctx, in.SourceURL)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}
	if _, err := p.storage.CreateArticle(ctx, in); err != nil {
		return false, err
	}
	return true, nil
}

// PollPodcasts refreshes the episodes of every active podcast and returns
// the number of episodes added
func (p *Poller) PollPodcasts(ctx context.Context) (int, error) {
	podcasts, err := p.storage.GetPodcasts(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to list podcasts: %w", err)
	}

	added := 0
	for _, podcast := range podcasts {
		if !podcast.IsActive {
			continue
		}
		n, err := p.pollPodcast(ctx, podcast)
		if err != nil {
			p.logger.Warn("podcast feed poll failed", "podcast", podcast.Title, "error", err)
			continue
		}
		added += n
	}
	return added, nil
}

func (p *Poller) pollPodcast(ctx context.Context, podcast models.Podcast) (int, error) {
	defer p.markPolled(podcastKey(podcast.ID))

	episodes, err := p.aggregator.FetchEpisodes(ctx, podcast)
	if err != nil {
		return 0, err
	}

	existing, err := p.storage.GetPodcastEpisodes(ctx, podcast.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list episodes: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.AudioURL] = true
	}

	added := 0
	for _, e := range episodes {
		if seen[e.AudioURL] {
			continue
		}
		seen[e.AudioURL] = true
		if _, err := p.storage.AddPodcastEpisode(ctx, e); err != nil {
			return added, fmt.Errorf("failed to store episode %q: %w", e.Title, err)
		}
		added++
	}
	return added, nil
}

func podcastKey(id int64) string {
	return fmt.Sprintf("podcast:%d", id)
}

func (p *Poller) markPolled(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastPolled[key] = time.Now()
}

// GetLastPolledTime returns when each source, and each podcast under
// "podcast:<id>", was last polled
func (p *Poller) GetLastPolledTime() map[string]time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[string]time.Time, len(p.lastPolled))
	for key, t := range p.lastPolled {
		result[key] = t
	}
	return result
}
