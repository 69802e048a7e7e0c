package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"radioai/internal/models"
)

// Cache key prefixes touched by mutations
const (
	pathArticles      = "/api/articles"
	pathFavorites     = "/api/favorites"
	pathPlaylists     = "/api/playlists"
	pathDownloads     = "/api/downloads"
	pathHistory       = "/api/history"
	pathNotifications = "/api/notifications"
	pathShares        = "/api/shares"
	pathLiveStreams   = "/api/live-streams"
)

func withCategory(path, category string) string {
	if category == "" {
		return path
	}
	return path + "?" + url.Values{"category": {category}}.Encode()
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

type Health struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	PollerActive bool   `json:"poller_active"`
}

type Summary struct {
	ArticleID int64  `json:"articleId"`
	Summary   string `json:"summary"`
}

type Insights struct {
	Topics  []string `json:"topics"`
	Insight string   `json:"insight"`
}

// Health is never cached
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.send(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArticleFilter narrows GET /api/articles; zero values use the server defaults
type ArticleFilter struct {
	Category string
	Limit    int
	Offset   int
}

func (f ArticleFilter) query() string {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) Articles(ctx context.Context, filter ArticleFilter) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathArticles+filter.query())
}

func (c *Client) FeaturedArticles(ctx context.Context) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathArticles+"/featured")
}

func (c *Client) TrendingArticles(ctx context.Context) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathArticles+"/trending")
}

func (c *Client) SearchArticles(ctx context.Context, query, category string) ([]models.Article, error) {
	q := url.Values{"q": {query}}
	if category != "" {
		q.Set("category", category)
	}
	return list[[]models.Article](ctx, c, pathArticles+"/search?"+q.Encode())
}

func (c *Client) Article(ctx context.Context, articleID int64) (*models.Article, error) {
	var out models.Article
	if err := c.get(ctx, pathArticles+"/"+id(articleID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateArticle(ctx context.Context, in models.InsertArticle) (*models.Article, error) {
	var out models.Article
	if err := c.send(ctx, http.MethodPost, pathArticles, in, &out, pathArticles); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EnhanceArticle(ctx context.Context, articleID int64) (*models.Article, error) {
	var out models.Article
	if err := c.send(ctx, http.MethodPost, pathArticles+"/"+id(articleID)+"/enhance", nil, &out, pathArticles); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SummarizeArticle(ctx context.Context, articleID int64) (*Summary, error) {
	var out Summary
	if err := c.send(ctx, http.MethodPost, pathArticles+"/"+id(articleID)+"/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	return list[[]string](ctx, c, "/api/categories")
}

func (c *Client) Insights(ctx context.Context) (*Insights, error) {
	var out Insights
	if err := c.get(ctx, "/api/insights", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Favorites(ctx context.Context) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathFavorites)
}

// AddFavorite saves articleID to the listener's favorites
func (c *Client) AddFavorite(ctx context.Context, articleID int64) error {
	return c.send(ctx, http.MethodPost, pathFavorites, models.InsertFavorite{ArticleID: articleID}, nil, pathFavorites)
}

func (c *Client) RemoveFavorite(ctx context.Context, articleID int64) error {
	return c.send(ctx, http.MethodDelete, pathFavorites+"/"+id(articleID), nil, nil, pathFavorites)
}

func (c *Client) IsFavorite(ctx context.Context, articleID int64) (bool, error) {
	var out struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := c.get(ctx, pathFavorites+"/"+id(articleID)+"/check", &out); err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}

func (c *Client) Playlists(ctx context.Context) ([]models.Playlist, error) {
	return list[[]models.Playlist](ctx, c, pathPlaylists)
}

func (c *Client) Playlist(ctx context.Context, playlistID int64) (*models.Playlist, error) {
	var out models.Playlist
	if err := c.get(ctx, pathPlaylists+"/"+id(playlistID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PlaylistArticles(ctx context.Context, playlistID int64) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathPlaylists+"/"+id(playlistID)+"/articles")
}

func (c *Client) CreatePlaylist(ctx context.Context, in models.InsertPlaylist) (*models.Playlist, error) {
	var out models.Playlist
	if err := c.send(ctx, http.MethodPost, pathPlaylists, in, &out, pathPlaylists); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePlaylist(ctx context.Context, playlistID int64) error {
	return c.send(ctx, http.MethodDelete, pathPlaylists+"/"+id(playlistID), nil, nil, pathPlaylists)
}

func (c *Client) Downloads(ctx context.Context) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathDownloads)
}

func (c *Client) AddDownload(ctx context.Context, articleID int64) error {
	return c.send(ctx, http.MethodPost, pathDownloads, models.InsertDownload{ArticleID: articleID}, nil, pathDownloads)
}

func (c *Client) RemoveDownload(ctx context.Context, articleID int64) error {
	return c.send(ctx, http.MethodDelete, pathDownloads+"/"+id(articleID), nil, nil, pathDownloads)
}

func (c *Client) History(ctx context.Context) ([]models.Article, error) {
	return list[[]models.Article](ctx, c, pathHistory)
}

func (c *Client) Progress(ctx context.Context, articleID int64) (*models.Progress, error) {
	var out models.Progress
	if err := c.get(ctx, pathHistory+"/"+id(articleID)+"/progress", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveProgress records how far the listener got through an article
func (c *Client) SaveProgress(ctx context.Context, articleID int64, progress float64, completed bool) error {
	in := models.InsertListeningHistory{ArticleID: articleID, Progress: progress, Completed: completed}
	return c.send(ctx, http.MethodPost, pathHistory+"/progress", in, nil, pathHistory)
}

func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	return list[[]models.Notification](ctx, c, pathNotifications)
}

func (c *Client) PushNotification(ctx context.Context, in models.InsertNotification) (*models.Notification, error) {
	var out models.Notification
	if err := c.send(ctx, http.MethodPost, pathNotifications, in, &out, pathNotifications); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	in := models.MarkReadRequest{NotificationID: models.FlexibleID(notificationID)}
	return c.send(ctx, http.MethodPost, pathNotifications+"/mark-read", in, nil, pathNotifications)
}

func (c *Client) Podcasts(ctx context.Context, category string) ([]models.Podcast, error) {
	return list[[]models.Podcast](ctx, c, withCategory("/api/podcasts", category))
}

func (c *Client) Podcast(ctx context.Context, podcastID int64) (*models.Podcast, error) {
	var out models.Podcast
	if err := c.get(ctx, "/api/podcasts/"+id(podcastID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PodcastEpisodes(ctx context.Context, podcastID int64) ([]models.PodcastEpisode, error) {
	return list[[]models.PodcastEpisode](ctx, c, "/api/podcasts/"+id(podcastID)+"/episodes")
}

func (c *Client) Shares(ctx context.Context) ([]models.Share, error) {
	return list[[]models.Share](ctx, c, pathShares)
}

func (c *Client) Share(ctx context.Context, in models.InsertShare) (*models.Share, error) {
	var out models.Share
	if err := c.send(ctx, http.MethodPost, pathShares, in, &out, pathShares); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LiveStreams(ctx context.Context, category string) ([]models.LiveStream, error) {
	return list[[]models.LiveStream](ctx, c, withCategory(pathLiveStreams, category))
}

func (c *Client) LiveStream(ctx context.Context, streamID int64) (*models.LiveStream, error) {
	var out models.LiveStream
	if err := c.get(ctx, pathLiveStreams+"/"+id(streamID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStreamStatus(ctx context.Context, streamID int64, isLive bool, listeners *int) (*models.LiveStream, error) {
	in := models.StreamStatusUpdate{IsLive: &isLive, Listeners: listeners}
	var out models.LiveStream
	if err := c.send(ctx, http.MethodPatch, pathLiveStreams+"/"+id(streamID)+"/status", in, &out, pathLiveStreams); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.get(ctx, "/api/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func list[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	if err := c.get(ctx, path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
