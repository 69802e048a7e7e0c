package storage

import (
	"context"
	"errors"

	"radioai/internal/models"
)

// ErrNotFound is returned by single-entity lookups when no row matches
var ErrNotFound = errors.New("not found")

// DefaultArticleLimit is used when GetArticles is called with a non-positive limit
const DefaultArticleLimit = 20

const (
	trendingLimit = 6
	featuredLimit = 3
)

// ArticleQuery selects a page of articles. An empty or "All" category
// disables filtering.
type ArticleQuery struct {
	Limit    int
	Offset   int
	Category string
}

// Storage defines the interface for the RadioAI store backends
type Storage interface {
	// Users
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user models.InsertUser) (*models.User, error)

	// Articles
	GetArticles(ctx context.Context, q ArticleQuery) ([]models.Article, error)
	GetArticle(ctx context.Context, id int64) (*models.Article, error)
	GetArticleBySourceURL(ctx context.Context, sourceURL string) (*models.Article, error)
	CreateArticle(ctx context.Context, article models.InsertArticle) (*models.Article, error)
	UpdateArticle(ctx context.Context, id int64, update models.ArticleUpdate) (*models.Article, error)
	SearchArticles(ctx context.Context, query, category string) ([]models.Article, error)
	GetTrendingArticles(ctx context.Context) ([]models.Article, error)
	GetFeaturedArticles(ctx context.Context) ([]models.Article, error)

	// Favorites
	GetUserFavorites(ctx context.Context, userID int64) ([]models.Article, error)
	AddFavorite(ctx context.Context, favorite models.InsertFavorite) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, articleID int64) (bool, error)
	IsFavorite(ctx context.Context, userID, articleID int64) (bool, error)

	// Downloads
	GetUserDownloads(ctx context.Context, userID int64) ([]models.Article, error)
	AddDownload(ctx context.Context, userID, articleID int64) error
	RemoveDownload(ctx context.Context, userID, articleID int64) (bool, error)

	// Playlists
	GetUserPlaylists(ctx context.Context, userID int64) ([]models.Playlist, error)
	GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error)
	CreatePlaylist(ctx context.Context, playlist models.InsertPlaylist) (*models.Playlist, error)
	UpdatePlaylist(ctx context.Context, id int64, update models.PlaylistUpdate) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, id int64) (bool, error)
	GetPlaylistArticles(ctx context.Context, playlistID int64) ([]models.Article, error)

	// Listening history
	GetUserHistory(ctx context.Context, userID int64) ([]models.Article, error)
	UpdateProgress(ctx context.Context, entry models.InsertListeningHistory) (*models.ListeningHistory, error)
	GetProgress(ctx context.Context, userID, articleID int64) (*models.ListeningHistory, error)

	// Podcasts
	GetPodcasts(ctx context.Context, category string) ([]models.Podcast, error)
	GetPodcast(ctx context.Context, id int64) (*models.Podcast, error)
	CreatePodcast(ctx context.Context, podcast models.InsertPodcast) (*models.Podcast, error)
	GetPodcastEpisodes(ctx context.Context, podcastID int64) ([]models.PodcastEpisode, error)
	GetEpisode(ctx context.Context, id int64) (*models.PodcastEpisode, error)
	AddPodcastEpisode(ctx context.Context, episode models.InsertPodcastEpisode) (*models.PodcastEpisode, error)

	// Shares
	ShareContent(ctx context.Context, share models.InsertShare) (*models.Share, error)
	GetUserShares(ctx context.Context, userID int64) ([]models.Share, error)

	// Live streams
	GetLiveStreams(ctx context.Context, category string) ([]models.LiveStream, error)
	GetLiveStream(ctx context.Context, id int64) (*models.LiveStream, error)
	CreateLiveStream(ctx context.Context, stream models.InsertLiveStream) (*models.LiveStream, error)
	UpdateStreamStatus(ctx context.Context, id int64, isLive bool, listeners *int) (*models.LiveStream, error)

	Close() error
}

func filtersCategory(category string) bool {
	return category != "" && category != models.AllCategories
}

func normalizeQuery(q ArticleQuery) ArticleQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultArticleLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}
