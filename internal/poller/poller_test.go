package poller

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"radioai/internal/aggregator"
	"radioai/internal/config"
	"radioai/internal/models"
	"radioai/internal/storage"
)

const newsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Example News</title>
  <item>
    <title>Council approves budget</title>
    <link>https://news.example.com/budget</link>
    <description>The city council approved the new budget.</description>
  </item>
  <item>
    <title>Storm expected tonight</title>
    <link>https://news.example.com/storm</link>
    <description>Forecasters expect heavy rain overnight.</description>
  </item>
</channel>
</rss>`

const showFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Morning Show</title>
  <item>
    <title>Monday</title>
    <enclosure url="https://cdn.example.com/monday.mp3" length="100" type="audio/mpeg"/>
  </item>
  <item>
    <title>Tuesday</title>
    <enclosure url="https://cdn.example.com/tuesday.mp3" length="100" type="audio/mpeg"/>
  </item>
</channel>
</rss>`

func setupPoller(t *testing.T) (*Poller, *storage.MemoryStorage, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/news.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newsFeed))
	})
	mux.HandleFunc("/show.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(showFeed))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	store := storage.NewMemoryStorage()
	agg := aggregator.New(aggregator.Options{HTTPClient: server.Client()})
	sources := []config.FeedSource{
		{Name: "news", URLs: []string{server.URL + "/news.xml"}, Category: "Politics"},
	}
	return New(agg, store, sources, time.Hour, nil), store, server
}

func TestPoller_New(t *testing.T) {
	p, _, _ := setupPoller(t)

	if p == nil {
		t.Fatal("Expected poller to be created, got nil")
	}
	if len(p.GetLastPolledTime()) != 0 {
		t.Error("Expected no poll times before polling")
	}
}

func TestPoller_IsPolling(t *testing.T) {
	p, _, _ := setupPoller(t)

	if p.IsPolling() {
		t.Error("Expected poller to not be polling initially")
	}

	p.Start()
	if !p.IsPolling() {
		t.Error("Expected poller to be polling after start")
	}

	p.Stop()
	if p.IsPolling() {
		t.Error("Expected poller to not be polling after stop")
	}

	// a stopped poller can be started again
	p.Start()
	if !p.IsPolling() {
		t.Error("Expected poller to restart")
	}
	p.Stop()
}

func TestPoller_ForcePoll(t *testing.T) {
	p, store, _ := setupPoller(t)
	ctx := context.Background()

	created, err := p.ForcePoll(ctx, "news")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created != 2 {
		t.Errorf("Expected 2 new articles, got %d", created)
	}

	article, err := store.GetArticleBySourceURL(ctx, "https://news.example.com/budget")
	if err != nil {
		t.Fatalf("Expected ingested article, got %v", err)
	}
	if article.Category != "Politics" || article.SourceName != "news" {
		t.Errorf("Unexpected article %+v", article)
	}

	// polling again does not duplicate
	created, err = p.ForcePoll(ctx, "news")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created != 0 {
		t.Errorf("Expected no new articles on second poll, got %d", created)
	}

	all, _ := store.GetArticles(ctx, storage.ArticleQuery{Limit: 50})
	if len(all) != 2 {
		t.Errorf("Expected 2 stored articles, got %d", len(all))
	}

	if p.GetLastPolledTime()["news"].IsZero() {
		t.Error("Expected last polled time to be recorded")
	}
}

func TestPoller_ForcePoll_InvalidSource(t *testing.T) {
	p, _, _ := setupPoller(t)

	_, err := p.ForcePoll(context.Background(), "invalid-source")
	if !errors.Is(err, ErrUnknownSource) {
		t.Errorf("Expected ErrUnknownSource, got %v", err)
	}
}

func TestPoller_NonPositiveIntervalUsesDefault(t *testing.T) {
	p := New(nil, storage.NewMemoryStorage(), nil, 0, nil)
	if p.pollInterval != config.DefaultPollInterval {
		t.Errorf("Expected interval %v, got %v", config.DefaultPollInterval, p.pollInterval)
	}
}

func TestPoller_PollPodcasts(t *testing.T) {
	p, store, server := setupPoller(t)
	ctx := context.Background()

	podcast, _ := store.CreatePodcast(ctx, models.InsertPodcast{
		Title:    "Morning Show",
		FeedURL:  server.URL + "/show.xml",
		Category: "Business",
	})
	inactive := false
	store.CreatePodcast(ctx, models.InsertPodcast{
		Title:    "Retired Show",
		FeedURL:  server.URL + "/show.xml",
		Category: "Business",
		IsActive: &inactive,
	})

	added, err := p.PollPodcasts(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if added != 2 {
		t.Errorf("Expected 2 episodes, got %d", added)
	}

	added, _ = p.PollPodcasts(ctx)
	if added != 0 {
		t.Errorf("Expected episodes to be deduplicated by audio url, got %d new", added)
	}

	episodes, _ := store.GetPodcastEpisodes(ctx, podcast.ID)
	if len(episodes) != 2 {
		t.Errorf("Expected 2 stored episodes, got %d", len(episodes))
	}
	if p.GetLastPolledTime()[podcastKey(podcast.ID)].IsZero() {
		t.Error("Expected podcast poll time to be recorded")
	}
}
