package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"

	"radioai/internal/config"
	"radioai/internal/models"
)

const collectTimeout = 30 * time.Second

// Categorizer picks a news category for an article
type Categorizer interface {
	CategorizeArticle(ctx context.Context, title, content string) string
}

// Options configures an Aggregator
type Options struct {
	Categorizer   Categorizer
	HTTPClient    *http.Client
	FetchFullText bool
	Logger        *slog.Logger
}

// Aggregator turns RSS/Atom feeds into article and episode payloads
type Aggregator struct {
	parser        *gofeed.Parser
	client        *http.Client
	categorizer   Categorizer
	fetchFullText bool
	content       *contentProcessor
	logger        *slog.Logger
}

func New(opts Options) *Aggregator {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "RadioAI/1.0"

	return &Aggregator{
		parser:        parser,
		client:        client,
		categorizer:   opts.Categorizer,
		fetchFullText: opts.FetchFullText,
		content:       newContentProcessor(),
		logger:        logger,
	}
}

type FeedResult struct {
	URL   string
	Items []*gofeed.Item
	Title string
	Error error
}

// FetchArticles fetches every feed of source in parallel and converts the
// items into article payloads. Items without a link, and items whose link is
// rejected by keep, are dropped before any enrichment. keep may be nil.
func (a *Aggregator) FetchArticles(ctx context.Context, source config.FeedSource, keep func(sourceURL string) bool) ([]models.InsertArticle, error) {
	if len(source.URLs) == 0 {
		return nil, fmt.Errorf("source '%s' has no feed urls", source.Name)
	}

	results := a.fetchFeedsParallel(ctx, source.URLs)

	var (
		articles []models.InsertArticle
		failures int
		seen     = make(map[string]bool)
	)
	for _, result := range results {
		if result.Error != nil {
			failures++
			a.logger.Warn("failed to fetch feed", "source", source.Name, "url", result.URL, "error", result.Error)
			continue
		}
		for _, item := range result.Items {
			link := strings.TrimSpace(item.Link)
			if link == "" || seen[link] {
				continue
			}
			seen[link] = true
			if keep != nil && !keep(link) {
				continue
			}

			article, ok := a.buildArticle(ctx, source, result.Title, item)
			if ok {
				articles = append(articles, article)
			}
		}
	}

	if failures == len(source.URLs) {
		return nil, fmt.Errorf("all feeds failed for source '%s'", source.Name)
	}
	return articles, nil
}

func (a *Aggregator) buildArticle(ctx context.Context, source config.FeedSource, feedTitle string, item *gofeed.Item) (models.InsertArticle, bool) {
	link := strings.TrimSpace(item.Link)

	body := item.Content
	if body == "" && a.fetchFullText {
		text, err := a.fetchReadable(ctx, link)
		if err != nil {
			a.logger.Debug("full text extraction failed", "url", link, "error", err)
		} else {
			body = text
		}
	}
	if body == "" {
		body = item.Description
	}

	content := a.content.markdown(body)
	if content == "" {
		return models.InsertArticle{}, false
	}

	summarySource := item.Description
	if summarySource == "" {
		summarySource = body
	}
	summary := a.content.summary(summarySource)
	if summary == "" {
		summary = strings.TrimSpace(item.Title)
	}

	sourceName := source.Name
	if feedTitle != "" && sourceName == "" {
		sourceName = feedTitle
	}

	plain := a.content.plainText(content)
	readTime, duration := estimateTimes(plain)

	publishedAt := time.Now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		publishedAt = *item.UpdatedParsed
	}

	metadata := models.Metadata{
		"language":  a.content.detectLanguage(plain),
		"feedTitle": feedTitle,
	}
	if item.Author != nil && item.Author.Name != "" {
		metadata["author"] = item.Author.Name
	}
	if len(item.Categories) > 0 {
		metadata["tags"] = item.Categories
	}

	return models.InsertArticle{
		Title:       strings.TrimSpace(item.Title),
		Content:     content,
		Summary:     summary,
		SourceURL:   link,
		SourceName:  sourceName,
		Category:    a.category(ctx, source, item.Title, plain),
		ImageURL:    itemImage(item),
		Duration:    &duration,
		ReadTime:    &readTime,
		PublishedAt: publishedAt,
		Metadata:    metadata,
	}, true
}

func (a *Aggregator) category(ctx context.Context, source config.FeedSource, title, content string) string {
	if source.Category != config.CategoryAuto {
		if models.IsValidCategory(source.Category) {
			return source.Category
		}
		return models.DefaultCategory
	}
	if a.categorizer == nil {
		return models.DefaultCategory
	}
	return a.categorizer.CategorizeArticle(ctx, title, content)
}

func itemImage(item *gofeed.Item) *string {
	if item.Image != nil && item.Image.URL != "" {
		url := item.Image.URL
		return &url
	}
	for _, enc := range item.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			url := enc.URL
			return &url
		}
	}
	return nil
}

// FetchEpisodes reads a podcast feed and returns its audio enclosures as episodes
func (a *Aggregator) FetchEpisodes(ctx context.Context, podcast models.Podcast) ([]models.InsertPodcastEpisode, error) {
	feed, err := a.parser.ParseURLWithContext(podcast.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse podcast feed: %w", err)
	}

	var episodes []models.InsertPodcastEpisode
	for _, item := range feed.Items {
		audioURL := audioEnclosure(item)
		if audioURL == "" {
			continue
		}

		episode := models.InsertPodcastEpisode{
			PodcastID:   podcast.ID,
			Title:       strings.TrimSpace(item.Title),
			Description: a.content.summary(item.Description),
			AudioURL:    audioURL,
			PublishedAt: time.Now(),
		}
		if item.PublishedParsed != nil {
			episode.PublishedAt = *item.PublishedParsed
		}
		if item.ITunesExt != nil {
			if d, ok := parseDuration(item.ITunesExt.Duration); ok {
				episode.Duration = &d
			}
		}
		episodes = append(episodes, episode)
	}
	return episodes, nil
}

func audioEnclosure(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "audio/") {
			return enc.URL
		}
	}
	return ""
}

func (a *Aggregator) fetchFeedsParallel(ctx context.Context, feedURLs []string) []FeedResult {
	var wg sync.WaitGroup
	results := make(chan FeedResult, len(feedURLs))

	for _, url := range feedURLs {
		wg.Add(1)
		go func(feedURL string) {
			defer wg.Done()
			results <- a.fetchFeed(ctx, feedURL)
		}(url)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	timeout := time.NewTimer(collectTimeout)
	defer timeout.Stop()

	var collected []FeedResult
	for {
		select {
		case result, ok := <-results:
			if !ok {
				return collected
			}
			collected = append(collected, result)
		case <-timeout.C:
			a.logger.Warn("timeout waiting for feed results", "received", len(collected), "expected", len(feedURLs))
			return collected
		case <-ctx.Done():
			return collected
		}
	}
}

func (a *Aggregator) fetchFeed(ctx context.Context, url string) FeedResult {
	feed, err := a.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return FeedResult{URL: url, Error: fmt.Errorf("failed to parse feed: %w", err)}
	}
	return FeedResult{URL: url, Items: feed.Items, Title: feed.Title}
}
