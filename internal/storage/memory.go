package storage

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"radioai/internal/models"
)

// MemoryStorage keeps every entity in process memory. All reads return
// copies and all writes replace whole values, so callers never share state
// with the store.
type MemoryStorage struct {
	mu  sync.RWMutex
	now func() time.Time

	users       map[int64]models.User
	articles    map[int64]models.Article
	favorites   map[int64]models.Favorite
	downloads   map[string]download
	playlists   map[int64]models.Playlist
	history     map[int64]models.ListeningHistory
	podcasts    map[int64]models.Podcast
	episodes    map[int64]models.PodcastEpisode
	shares      map[int64]models.Share
	liveStreams map[int64]models.LiveStream

	nextID map[string]int64
}

type download struct {
	userID    int64
	articleID int64
}

// NewMemoryStorage returns an empty in-memory store
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		now:         time.Now,
		users:       make(map[int64]models.User),
		articles:    make(map[int64]models.Article),
		favorites:   make(map[int64]models.Favorite),
		downloads:   make(map[string]download),
		playlists:   make(map[int64]models.Playlist),
		history:     make(map[int64]models.ListeningHistory),
		podcasts:    make(map[int64]models.Podcast),
		episodes:    make(map[int64]models.PodcastEpisode),
		shares:      make(map[int64]models.Share),
		liveStreams: make(map[int64]models.LiveStream),
		nextID:      make(map[string]int64),
	}
}

func (s *MemoryStorage) id(table string) int64 {
	s.nextID[table]++
	return s.nextID[table]
}

// Users

func (s *MemoryStorage) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStorage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(_ context.Context, in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := models.User{ID: s.id("users"), Username: in.Username, Password: in.Password}
	s.users[u.ID] = u
	return &u, nil
}

// Articles

func (s *MemoryStorage) GetArticles(_ context.Context, q ArticleQuery) ([]models.Article, error) {
	q = normalizeQuery(q)
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := s.sortedArticles(func(a *models.Article) bool {
		return !filtersCategory(q.Category) || a.Category == q.Category
	})
	return paginate(articles, q.Offset, q.Limit), nil
}

func (s *MemoryStorage) GetArticle(_ context.Context, id int64) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneArticle(a), nil
}

func (s *MemoryStorage) GetArticleBySourceURL(_ context.Context, sourceURL string) (*models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.SourceURL == sourceURL {
			return cloneArticle(a), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateArticle(_ context.Context, in models.InsertArticle) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	a := articleFromInsert(in, now)
	a.ID = s.id("articles")
	s.articles[a.ID] = a
	return cloneArticle(a), nil
}

func (s *MemoryStorage) UpdateArticle(_ context.Context, id int64, update models.ArticleUpdate) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, ErrNotFound
	}
	a = a.Apply(update)
	s.articles[id] = a
	return cloneArticle(a), nil
}

func (s *MemoryStorage) SearchArticles(_ context.Context, query, category string) ([]models.Article, error) {
	needle := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedArticles(func(a *models.Article) bool {
		if filtersCategory(category) && a.Category != category {
			return false
		}
		return strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Summary), needle) ||
			strings.Contains(strings.ToLower(a.Content), needle)
	}), nil
}

func (s *MemoryStorage) GetTrendingArticles(ctx context.Context) ([]models.Article, error) {
	return s.GetArticles(ctx, ArticleQuery{Limit: trendingLimit})
}

func (s *MemoryStorage) GetFeaturedArticles(ctx context.Context) ([]models.Article, error) {
	return s.GetArticles(ctx, ArticleQuery{Limit: featuredLimit})
}

// sortedArticles returns copies of matching articles, newest first with
// ties broken by insertion order. Caller holds the lock.
func (s *MemoryStorage) sortedArticles(match func(*models.Article) bool) []models.Article {
	out := make([]models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if match(&a) {
			out = append(out, *cloneArticle(a))
		}
	}
	sortArticlesByPublished(out)
	return out
}

// Favorites

func (s *MemoryStorage) GetUserFavorites(_ context.Context, userID int64) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Article
	for _, f := range s.favorites {
		if f.UserID != userID {
			continue
		}
		if a, ok := s.articles[f.ArticleID]; ok {
			out = append(out, *cloneArticle(a))
		}
	}
	sortArticlesByPublished(out)
	return nonNil(out), nil
}

func (s *MemoryStorage) AddFavorite(_ context.Context, in models.InsertFavorite) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := models.Favorite{ID: s.id("favorites"), UserID: in.UserID, ArticleID: in.ArticleID, CreatedAt: s.now()}
	s.favorites[f.ID] = f
	return &f, nil
}

func (s *MemoryStorage) RemoveFavorite(_ context.Context, userID, articleID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Duplicates are possible, remove the oldest match only
	var found int64
	for id, f := range s.favorites {
		if f.UserID == userID && f.ArticleID == articleID && (found == 0 || id < found) {
			found = id
		}
	}
	if found == 0 {
		return false, nil
	}
	delete(s.favorites, found)
	return true, nil
}

func (s *MemoryStorage) IsFavorite(_ context.Context, userID, articleID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.favorites {
		if f.UserID == userID && f.ArticleID == articleID {
			return true, nil
		}
	}
	return false, nil
}

// Downloads

func (s *MemoryStorage) GetUserDownloads(_ context.Context, userID int64) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Article, 0)
	for _, d := range s.downloads {
		if d.userID != userID {
			continue
		}
		if a, ok := s.articles[d.articleID]; ok {
			out = append(out, *cloneArticle(a))
		}
	}
	sortArticlesByPublished(out)
	return out, nil
}

func (s *MemoryStorage) AddDownload(_ context.Context, userID, articleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := models.DownloadKey(userID, articleID)
	if _, ok := s.downloads[key]; ok {
		return nil
	}
	s.downloads[key] = download{userID: userID, articleID: articleID}
	return nil
}

func (s *MemoryStorage) RemoveDownload(_ context.Context, userID, articleID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := models.DownloadKey(userID, articleID)
	if _, ok := s.downloads[key]; !ok {
		return false, nil
	}
	delete(s.downloads, key)
	return true, nil
}

// Playlists

func (s *MemoryStorage) GetUserPlaylists(_ context.Context, userID int64) ([]models.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Playlist, 0)
	for _, p := range s.playlists {
		if p.UserID == userID {
			out = append(out, clonePlaylist(p))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *MemoryStorage) GetPlaylist(_ context.Context, id int64) (*models.Playlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePlaylist(p)
	return &p, nil
}

func (s *MemoryStorage) CreatePlaylist(_ context.Context, in models.InsertPlaylist) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := models.Playlist{
		ID:          s.id("playlists"),
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		ArticleIDs:  append(models.StringList{}, in.ArticleIDs...),
		CreatedAt:   s.now(),
	}
	s.playlists[p.ID] = p
	p = clonePlaylist(p)
	return &p, nil
}

func (s *MemoryStorage) UpdatePlaylist(_ context.Context, id int64, update models.PlaylistUpdate) (*models.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePlaylist(p.Apply(update))
	s.playlists[id] = p
	p = clonePlaylist(p)
	return &p, nil
}

func (s *MemoryStorage) DeletePlaylist(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.playlists[id]; !ok {
		return false, nil
	}
	delete(s.playlists, id)
	return true, nil
}

func (s *MemoryStorage) GetPlaylistArticles(_ context.Context, playlistID int64) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.playlists[playlistID]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]models.Article, 0, len(p.ArticleIDs))
	for _, raw := range p.ArticleIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if a, ok := s.articles[id]; ok {
			out = append(out, *cloneArticle(a))
		}
	}
	return out, nil
}

// Listening history

func (s *MemoryStorage) GetUserHistory(_ context.Context, userID int64) ([]models.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.ListeningHistory, 0)
	for _, h := range s.history {
		if h.UserID == userID {
			entries = append(entries, h)
		}
	}
	sortHistory(entries)

	out := make([]models.Article, 0, len(entries))
	for _, h := range entries {
		if a, ok := s.articles[h.ArticleID]; ok {
			out = append(out, *cloneArticle(a))
		}
	}
	return out, nil
}

func (s *MemoryStorage) UpdateProgress(_ context.Context, in models.InsertListeningHistory) (*models.ListeningHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listenedAt := in.ListenedAt
	if listenedAt.IsZero() {
		listenedAt = s.now()
	}

	for id, h := range s.history {
		if h.UserID == in.UserID && h.ArticleID == in.ArticleID {
			h.Progress = in.Progress
			h.Completed = in.Completed
			h.ListenedAt = listenedAt
			s.history[id] = h
			return &h, nil
		}
	}

	h := models.ListeningHistory{
		ID:         s.id("history"),
		UserID:     in.UserID,
		ArticleID:  in.ArticleID,
		Progress:   in.Progress,
		Completed:  in.Completed,
		ListenedAt: listenedAt,
	}
	s.history[h.ID] = h
	return &h, nil
}

func (s *MemoryStorage) GetProgress(_ context.Context, userID, articleID int64) (*models.ListeningHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.history {
		if h.UserID == userID && h.ArticleID == articleID {
			return &h, nil
		}
	}
	return nil, ErrNotFound
}

// Podcasts

func (s *MemoryStorage) GetPodcasts(_ context.Context, category string) ([]models.Podcast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Podcast, 0)
	for _, p := range s.podcasts {
		if !p.IsActive || (filtersCategory(category) && p.Category != category) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetPodcast(_ context.Context, id int64) (*models.Podcast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.podcasts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStorage) CreatePodcast(_ context.Context, in models.InsertPodcast) (*models.Podcast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := podcastFromInsert(in, s.now())
	p.ID = s.id("podcasts")
	s.podcasts[p.ID] = p
	return &p, nil
}

func (s *MemoryStorage) GetPodcastEpisodes(_ context.Context, podcastID int64) ([]models.PodcastEpisode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PodcastEpisode, 0)
	for _, e := range s.episodes {
		if e.PodcastID == podcastID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStorage) GetEpisode(_ context.Context, id int64) (*models.PodcastEpisode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.episodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemoryStorage) AddPodcastEpisode(_ context.Context, in models.InsertPodcastEpisode) (*models.PodcastEpisode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e := models.PodcastEpisode{
		ID:          s.id("episodes"),
		PodcastID:   in.PodcastID,
		Title:       in.Title,
		Description: in.Description,
		AudioURL:    in.AudioURL,
		Duration:    in.Duration,
		PublishedAt: orNow(in.PublishedAt, now),
		CreatedAt:   now,
	}
	s.episodes[e.ID] = e
	return &e, nil
}

// Shares

func (s *MemoryStorage) ShareContent(_ context.Context, in models.InsertShare) (*models.Share, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh := models.Share{
		ID:         s.id("shares"),
		UserID:     in.UserID,
		ArticleID:  in.ArticleID,
		PlaylistID: in.PlaylistID,
		Platform:   in.Platform,
		SharedAt:   s.now(),
	}
	s.shares[sh.ID] = sh
	return &sh, nil
}

func (s *MemoryStorage) GetUserShares(_ context.Context, userID int64) ([]models.Share, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Share, 0)
	for _, sh := range s.shares {
		if sh.UserID == userID {
			out = append(out, sh)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SharedAt.Equal(out[j].SharedAt) {
			return out[i].SharedAt.After(out[j].SharedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Live streams

func (s *MemoryStorage) GetLiveStreams(_ context.Context, category string) ([]models.LiveStream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LiveStream, 0)
	for _, ls := range s.liveStreams {
		if filtersCategory(category) && ls.Category != category {
			continue
		}
		out = append(out, ls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStorage) GetLiveStream(_ context.Context, id int64) (*models.LiveStream, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ls, ok := s.liveStreams[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ls, nil
}

func (s *MemoryStorage) CreateLiveStream(_ context.Context, in models.InsertLiveStream) (*models.LiveStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := liveStreamFromInsert(in, s.now())
	ls.ID = s.id("liveStreams")
	s.liveStreams[ls.ID] = ls
	return &ls, nil
}

func (s *MemoryStorage) UpdateStreamStatus(_ context.Context, id int64, isLive bool, listeners *int) (*models.LiveStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.liveStreams[id]
	if !ok {
		return nil, ErrNotFound
	}
	ls.IsLive = isLive
	if listeners != nil {
		ls.Listeners = *listeners
	}
	s.liveStreams[id] = ls
	return &ls, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStorage) Close() error {
	return nil
}
