package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"radioai/internal/models"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// sqliteDriver is go-sqlite3 with a Unicode aware fold() function. SQLite's
// own LOWER only folds ASCII.
const sqliteDriver = "sqlite3_fold"

func init() {
	sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("fold", strings.ToLower, true)
		},
	})
	sqlx.BindDriver(sqliteDriver, sqlx.QUESTION)
}

var articleFields = []string{
	"id", "title", "content", "summary", "enhanced_content", "audio_url", "source_url",
	"source_name", "category", "image_url", "duration", "read_time", "published_at",
	"created_at", "is_processed", "metadata",
}

var articleColumns = strings.Join(articleFields, ", ")

// qualified prefixes every column with the table alias
func qualified(alias string, fields []string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = alias + "." + f
	}
	return strings.Join(out, ", ")
}

// SQLStorage persists entities through database/sql using sqlx. It speaks
// both SQLite and PostgreSQL; queries are written with ? placeholders and
// rebound for the active driver.
type SQLStorage struct {
	db     *sqlx.DB
	driver string
	logger *slog.Logger
	now    func() time.Time
}

// NewSQLStorage opens the database and creates missing tables
func NewSQLStorage(driver, dsn string, logger *slog.Logger) (*SQLStorage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	sqlDriver := driver
	if driver == DriverSQLite {
		sqlDriver = sqliteDriver
	}
	db, err := sqlx.Open(sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite only supports one writer at a time
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &SQLStorage{db: db, driver: driver, logger: logger, now: time.Now}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	logger.Info("storage ready", "driver", driver)
	return s, nil
}

func (s *SQLStorage) createTables() error {
	idCol, tsCol, floatCol := "INTEGER PRIMARY KEY AUTOINCREMENT", "DATETIME", "REAL"
	if s.driver == DriverPostgres {
		idCol, tsCol, floatCol = "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ", "DOUBLE PRECISION"
	}
	r := strings.NewReplacer("{{id}}", idCol, "{{ts}}", tsCol, "{{float}}", floatCol)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id {{id}},
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id {{id}},
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			summary TEXT NOT NULL,
			enhanced_content TEXT,
			audio_url TEXT,
			source_url TEXT NOT NULL,
			source_name TEXT NOT NULL,
			category TEXT NOT NULL,
			image_url TEXT,
			duration INTEGER,
			read_time INTEGER,
			published_at {{ts}} NOT NULL,
			created_at {{ts}} NOT NULL,
			is_processed BOOLEAN NOT NULL DEFAULT FALSE,
			metadata TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_source_url ON articles(source_url)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id {{id}},
			user_id BIGINT NOT NULL,
			article_id BIGINT NOT NULL,
			created_at {{ts}} NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id, article_id)`,
		`CREATE TABLE IF NOT EXISTS downloads (
			user_id BIGINT NOT NULL,
			article_id BIGINT NOT NULL,
			created_at {{ts}} NOT NULL,
			PRIMARY KEY (user_id, article_id)
		)`,
		`CREATE TABLE IF NOT EXISTS playlists (
			id {{id}},
			user_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			article_ids TEXT NOT NULL DEFAULT '[]',
			created_at {{ts}} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS listening_history (
			id {{id}},
			user_id BIGINT NOT NULL,
			article_id BIGINT NOT NULL,
			progress {{float}} NOT NULL DEFAULT 0,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			listened_at {{ts}} NOT NULL,
			UNIQUE (user_id, article_id)
		)`,
		`CREATE TABLE IF NOT EXISTS podcasts (
			id {{id}},
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			author TEXT NOT NULL,
			image_url TEXT,
			feed_url TEXT NOT NULL,
			category TEXT NOT NULL,
			language TEXT NOT NULL DEFAULT 'en',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at {{ts}} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS podcast_episodes (
			id {{id}},
			podcast_id BIGINT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			audio_url TEXT NOT NULL,
			duration INTEGER,
			published_at {{ts}} NOT NULL,
			created_at {{ts}} NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_episodes_podcast ON podcast_episodes(podcast_id, published_at DESC)`,
		`CREATE TABLE IF NOT EXISTS shares (
			id {{id}},
			user_id BIGINT NOT NULL,
			article_id BIGINT,
			playlist_id BIGINT,
			platform TEXT NOT NULL,
			shared_at {{ts}} NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS live_streams (
			id {{id}},
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			stream_url TEXT NOT NULL,
			category TEXT NOT NULL,
			is_live BOOLEAN NOT NULL DEFAULT TRUE,
			listeners INTEGER NOT NULL DEFAULT 0,
			language TEXT NOT NULL DEFAULT 'en',
			created_at {{ts}} NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(r.Replace(stmt)); err != nil {
			return fmt.Errorf("%s: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '('); i > 0 {
		return strings.TrimSpace(stmt[:i])
	}
	return stmt
}

// timestamp normalizes times so both drivers store and order them alike
func (s *SQLStorage) timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// insert runs an INSERT ... RETURNING id statement
func (s *SQLStorage) insert(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) (int64, error) {
	var id int64
	if err := q.QueryRowxContext(ctx, s.db.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SQLStorage) get(ctx context.Context, q sqlx.QueryerContext, dest any, query string, args ...any) error {
	err := sqlx.GetContext(ctx, q, dest, s.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *SQLStorage) selectAll(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, s.db, dest, s.db.Rebind(query), args...)
}

func (s *SQLStorage) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Users

func (s *SQLStorage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := s.get(ctx, s.db, &u, `SELECT id, username, password FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.get(ctx, s.db, &u, `SELECT id, username, password FROM users WHERE username = ?`, username); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLStorage) CreateUser(ctx context.Context, in models.InsertUser) (*models.User, error) {
	id, err := s.insert(ctx, s.db, `INSERT INTO users (username, password) VALUES (?, ?)`, in.Username, in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &models.User{ID: id, Username: in.Username, Password: in.Password}, nil
}

// Articles

func (s *SQLStorage) GetArticles(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	q = normalizeQuery(q)
	query := `SELECT ` + articleColumns + ` FROM articles`
	var args []any
	if filtersCategory(q.Category) {
		query += ` WHERE category = ?`
		args = append(args, q.Category)
	}
	query += ` ORDER BY published_at DESC, id ASC LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset)

	articles := []models.Article{}
	if err := s.selectAll(ctx, &articles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *SQLStorage) getArticle(ctx context.Context, q sqlx.QueryerContext, id int64) (*models.Article, error) {
	var a models.Article
	if err := s.get(ctx, q, &a, `SELECT `+articleColumns+` FROM articles WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SQLStorage) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	return s.getArticle(ctx, s.db, id)
}

func (s *SQLStorage) GetArticleBySourceURL(ctx context.Context, sourceURL string) (*models.Article, error) {
	var a models.Article
	err := s.get(ctx, s.db, &a, `SELECT `+articleColumns+` FROM articles WHERE source_url = ? ORDER BY id LIMIT 1`, sourceURL)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *SQLStorage) CreateArticle(ctx context.Context, in models.InsertArticle) (*models.Article, error) {
	a := articleFromInsert(in, s.timestamp(s.now()))
	a.PublishedAt = s.timestamp(a.PublishedAt)

	id, err := s.insert(ctx, s.db, `INSERT INTO articles (title, content, summary, enhanced_content,
		audio_url, source_url, source_name, category, image_url, duration, read_time,
		published_at, created_at, is_processed, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title, a.Content, a.Summary, a.EnhancedContent, a.AudioURL, a.SourceURL, a.SourceName,
		a.Category, a.ImageURL, a.Duration, a.ReadTime, a.PublishedAt, a.CreatedAt, a.IsProcessed, a.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	a.ID = id
	return &a, nil
}

func (s *SQLStorage) UpdateArticle(ctx context.Context, id int64, update models.ArticleUpdate) (*models.Article, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := s.getArticle(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	a := current.Apply(update)

	_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE articles SET title = ?, content = ?, summary = ?,
		enhanced_content = ?, audio_url = ?, category = ?, image_url = ?, duration = ?,
		read_time = ?, is_processed = ?, metadata = ? WHERE id = ?`),
		a.Title, a.Content, a.Summary, a.EnhancedContent, a.AudioURL, a.Category, a.ImageURL,
		a.Duration, a.ReadTime, a.IsProcessed, a.Metadata, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit article update: %w", err)
	}
	return &a, nil
}

func (s *SQLStorage) SearchArticles(ctx context.Context, query, category string) ([]models.Article, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	fold := "LOWER"
	if s.driver == DriverSQLite {
		fold = "fold"
	}
	q := `SELECT ` + articleColumns + ` FROM articles
		WHERE (` + fold + `(title) LIKE ? ESCAPE '\' OR ` + fold + `(summary) LIKE ? ESCAPE '\' OR ` + fold + `(content) LIKE ? ESCAPE '\')`
	args := []any{pattern, pattern, pattern}
	if filtersCategory(category) {
		q += ` AND category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY published_at DESC, id ASC`

	articles := []models.Article{}
	if err := s.selectAll(ctx, &articles, q, args...); err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return articles, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (s *SQLStorage) GetTrendingArticles(ctx context.Context) ([]models.Article, error) {
	return s.GetArticles(ctx, ArticleQuery{Limit: trendingLimit})
}

func (s *SQLStorage) GetFeaturedArticles(ctx context.Context) ([]models.Article, error) {
	return s.GetArticles(ctx, ArticleQuery{Limit: featuredLimit})
}

// joinedArticles selects articles joined as a through a link table aliased as l
func (s *SQLStorage) joinedArticles(ctx context.Context, from, order string, args ...any) ([]models.Article, error) {
	query := `SELECT ` + qualified("a", articleFields) + ` FROM ` + from + ` ORDER BY ` + order

	articles := []models.Article{}
	if err := s.selectAll(ctx, &articles, query, args...); err != nil {
		return nil, err
	}
	return articles, nil
}

// Favorites

func (s *SQLStorage) GetUserFavorites(ctx context.Context, userID int64) ([]models.Article, error) {
	articles, err := s.joinedArticles(ctx,
		`favorites l JOIN articles a ON a.id = l.article_id WHERE l.user_id = ?`,
		`a.published_at DESC, a.id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return articles, nil
}

func (s *SQLStorage) AddFavorite(ctx context.Context, in models.InsertFavorite) (*models.Favorite, error) {
	f := models.Favorite{UserID: in.UserID, ArticleID: in.ArticleID, CreatedAt: s.timestamp(s.now())}
	id, err := s.insert(ctx, s.db, `INSERT INTO favorites (user_id, article_id, created_at) VALUES (?, ?, ?)`,
		f.UserID, f.ArticleID, f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	f.ID = id
	return &f, nil
}

func (s *SQLStorage) RemoveFavorite(ctx context.Context, userID, articleID int64) (bool, error) {
	n, err := s.exec(ctx, `DELETE FROM favorites WHERE id = (
		SELECT MIN(id) FROM favorites WHERE user_id = ? AND article_id = ?)`, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	return n > 0, nil
}

func (s *SQLStorage) IsFavorite(ctx context.Context, userID, articleID int64) (bool, error) {
	var n int
	err := s.get(ctx, s.db, &n, `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND article_id = ?`, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return n > 0, nil
}

// Downloads

func (s *SQLStorage) GetUserDownloads(ctx context.Context, userID int64) ([]models.Article, error) {
	articles, err := s.joinedArticles(ctx,
		`downloads l JOIN articles a ON a.id = l.article_id WHERE l.user_id = ?`,
		`a.published_at DESC, a.id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	return articles, nil
}

func (s *SQLStorage) AddDownload(ctx context.Context, userID, articleID int64) error {
	_, err := s.exec(ctx, `INSERT INTO downloads (user_id, article_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT (user_id, article_id) DO NOTHING`, userID, articleID, s.timestamp(s.now()))
	if err != nil {
		return fmt.Errorf("failed to add download: %w", err)
	}
	return nil
}

func (s *SQLStorage) RemoveDownload(ctx context.Context, userID, articleID int64) (bool, error) {
	n, err := s.exec(ctx, `DELETE FROM downloads WHERE user_id = ? AND article_id = ?`, userID, articleID)
	if err != nil {
		return false, fmt.Errorf("failed to remove download: %w", err)
	}
	return n > 0, nil
}

// Playlists

const playlistColumns = `id, user_id, name, description, article_ids, created_at`

func (s *SQLStorage) GetUserPlaylists(ctx context.Context, userID int64) ([]models.Playlist, error) {
	playlists := []models.Playlist{}
	err := s.selectAll(ctx, &playlists, `SELECT `+playlistColumns+` FROM playlists
		WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	return playlists, nil
}

func (s *SQLStorage) getPlaylist(ctx context.Context, q sqlx.QueryerContext, id int64) (*models.Playlist, error) {
	var p models.Playlist
	if err := s.get(ctx, q, &p, `SELECT `+playlistColumns+` FROM playlists WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStorage) GetPlaylist(ctx context.Context, id int64) (*models.Playlist, error) {
	return s.getPlaylist(ctx, s.db, id)
}

func (s *SQLStorage) CreatePlaylist(ctx context.Context, in models.InsertPlaylist) (*models.Playlist, error) {
	p := models.Playlist{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		ArticleIDs:  append(models.StringList{}, in.ArticleIDs...),
		CreatedAt:   s.timestamp(s.now()),
	}
	id, err := s.insert(ctx, s.db, `INSERT INTO playlists (user_id, name, description, article_ids, created_at)
		VALUES (?, ?, ?, ?, ?)`, p.UserID, p.Name, p.Description, p.ArticleIDs, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	p.ID = id
	return &p, nil
}

func (s *SQLStorage) UpdatePlaylist(ctx context.Context, id int64, update models.PlaylistUpdate) (*models.Playlist, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := s.getPlaylist(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	p := current.Apply(update)

	_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE playlists SET name = ?, description = ?, article_ids = ? WHERE id = ?`),
		p.Name, p.Description, p.ArticleIDs, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit playlist update: %w", err)
	}
	return &p, nil
}

func (s *SQLStorage) DeletePlaylist(ctx context.Context, id int64) (bool, error) {
	n, err := s.exec(ctx, `DELETE FROM playlists WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete playlist: %w", err)
	}
	return n > 0, nil
}

func (s *SQLStorage) GetPlaylistArticles(ctx context.Context, playlistID int64) ([]models.Article, error) {
	p, err := s.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(p.ArticleIDs))
	for _, raw := range p.ArticleIDs {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return []models.Article{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+articleColumns+` FROM articles WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build playlist query: %w", err)
	}
	found := []models.Article{}
	if err := s.selectAll(ctx, &found, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load playlist articles: %w", err)
	}

	byID := make(map[int64]models.Article, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	out := make([]models.Article, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// Listening history

const historyColumns = `id, user_id, article_id, progress, completed, listened_at`

func (s *SQLStorage) GetUserHistory(ctx context.Context, userID int64) ([]models.Article, error) {
	articles, err := s.joinedArticles(ctx,
		`listening_history l JOIN articles a ON a.id = l.article_id WHERE l.user_id = ?`,
		`l.listened_at DESC, l.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return articles, nil
}

func (s *SQLStorage) UpdateProgress(ctx context.Context, in models.InsertListeningHistory) (*models.ListeningHistory, error) {
	listenedAt := in.ListenedAt
	if listenedAt.IsZero() {
		listenedAt = s.now()
	}
	h := models.ListeningHistory{
		UserID:     in.UserID,
		ArticleID:  in.ArticleID,
		Progress:   in.Progress,
		Completed:  in.Completed,
		ListenedAt: s.timestamp(listenedAt),
	}
	id, err := s.insert(ctx, s.db, `INSERT INTO listening_history (user_id, article_id, progress, completed, listened_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, article_id) DO UPDATE SET
			progress = excluded.progress,
			completed = excluded.completed,
			listened_at = excluded.listened_at`,
		h.UserID, h.ArticleID, h.Progress, h.Completed, h.ListenedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	h.ID = id
	return &h, nil
}

func (s *SQLStorage) GetProgress(ctx context.Context, userID, articleID int64) (*models.ListeningHistory, error) {
	var h models.ListeningHistory
	err := s.get(ctx, s.db, &h, `SELECT `+historyColumns+` FROM listening_history
		WHERE user_id = ? AND article_id = ?`, userID, articleID)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Podcasts

const podcastColumns = `id, title, description, author, image_url, feed_url, category, language, is_active, created_at`

func (s *SQLStorage) GetPodcasts(ctx context.Context, category string) ([]models.Podcast, error) {
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE is_active = ?`
	args := []any{true}
	if filtersCategory(category) {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	podcasts := []models.Podcast{}
	if err := s.selectAll(ctx, &podcasts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}
	return podcasts, nil
}

func (s *SQLStorage) GetPodcast(ctx context.Context, id int64) (*models.Podcast, error) {
	var p models.Podcast
	if err := s.get(ctx, s.db, &p, `SELECT `+podcastColumns+` FROM podcasts WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStorage) CreatePodcast(ctx context.Context, in models.InsertPodcast) (*models.Podcast, error) {
	p := podcastFromInsert(in, s.timestamp(s.now()))
	id, err := s.insert(ctx, s.db, `INSERT INTO podcasts (title, description, author, image_url, feed_url,
		category, language, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.Description, p.Author, p.ImageURL, p.FeedURL, p.Category, p.Language, p.IsActive, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create podcast: %w", err)
	}
	p.ID = id
	return &p, nil
}

const episodeColumns = `id, podcast_id, title, description, audio_url, duration, published_at, created_at`

func (s *SQLStorage) GetPodcastEpisodes(ctx context.Context, podcastID int64) ([]models.PodcastEpisode, error) {
	episodes := []models.PodcastEpisode{}
	err := s.selectAll(ctx, &episodes, `SELECT `+episodeColumns+` FROM podcast_episodes
		WHERE podcast_id = ? ORDER BY published_at DESC, id ASC`, podcastID)
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	return episodes, nil
}

func (s *SQLStorage) GetEpisode(ctx context.Context, id int64) (*models.PodcastEpisode, error) {
	var e models.PodcastEpisode
	if err := s.get(ctx, s.db, &e, `SELECT `+episodeColumns+` FROM podcast_episodes WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLStorage) AddPodcastEpisode(ctx context.Context, in models.InsertPodcastEpisode) (*models.PodcastEpisode, error) {
	now := s.timestamp(s.now())
	e := models.PodcastEpisode{
		PodcastID:   in.PodcastID,
		Title:       in.Title,
		Description: in.Description,
		AudioURL:    in.AudioURL,
		Duration:    in.Duration,
		PublishedAt: s.timestamp(orNow(in.PublishedAt, now)),
		CreatedAt:   now,
	}
	id, err := s.insert(ctx, s.db, `INSERT INTO podcast_episodes (podcast_id, title, description, audio_url,
		duration, published_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.PodcastID, e.Title, e.Description, e.AudioURL, e.Duration, e.PublishedAt, e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add episode: %w", err)
	}
	e.ID = id
	return &e, nil
}

// Shares

func (s *SQLStorage) ShareContent(ctx context.Context, in models.InsertShare) (*models.Share, error) {
	sh := models.Share{
		UserID:     in.UserID,
		ArticleID:  in.ArticleID,
		PlaylistID: in.PlaylistID,
		Platform:   in.Platform,
		SharedAt:   s.timestamp(s.now()),
	}
	id, err := s.insert(ctx, s.db, `INSERT INTO shares (user_id, article_id, playlist_id, platform, shared_at)
		VALUES (?, ?, ?, ?, ?)`, sh.UserID, sh.ArticleID, sh.PlaylistID, sh.Platform, sh.SharedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record share: %w", err)
	}
	sh.ID = id
	return &sh, nil
}

func (s *SQLStorage) GetUserShares(ctx context.Context, userID int64) ([]models.Share, error) {
	shares := []models.Share{}
	err := s.selectAll(ctx, &shares, `SELECT id, user_id, article_id, playlist_id, platform, shared_at
		FROM shares WHERE user_id = ? ORDER BY shared_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	return shares, nil
}

// Live streams

const streamColumns = `id, title, description, stream_url, category, is_live, listeners, language, created_at`

func (s *SQLStorage) GetLiveStreams(ctx context.Context, category string) ([]models.LiveStream, error) {
	query := `SELECT ` + streamColumns + ` FROM live_streams`
	var args []any
	if filtersCategory(category) {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	streams := []models.LiveStream{}
	if err := s.selectAll(ctx, &streams, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list live streams: %w", err)
	}
	return streams, nil
}

func (s *SQLStorage) getLiveStream(ctx context.Context, q sqlx.QueryerContext, id int64) (*models.LiveStream, error) {
	var ls models.LiveStream
	if err := s.get(ctx, q, &ls, `SELECT `+streamColumns+` FROM live_streams WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &ls, nil
}

func (s *SQLStorage) GetLiveStream(ctx context.Context, id int64) (*models.LiveStream, error) {
	return s.getLiveStream(ctx, s.db, id)
}

func (s *SQLStorage) CreateLiveStream(ctx context.Context, in models.InsertLiveStream) (*models.LiveStream, error) {
	ls := liveStreamFromInsert(in, s.timestamp(s.now()))
	id, err := s.insert(ctx, s.db, `INSERT INTO live_streams (title, description, stream_url, category,
		is_live, listeners, language, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ls.Title, ls.Description, ls.StreamURL, ls.Category, ls.IsLive, ls.Listeners, ls.Language, ls.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create live stream: %w", err)
	}
	ls.ID = id
	return &ls, nil
}

func (s *SQLStorage) UpdateStreamStatus(ctx context.Context, id int64, isLive bool, listeners *int) (*models.LiveStream, error) {
	var (
		n   int64
		err error
	)
	if listeners != nil {
		n, err = s.exec(ctx, `UPDATE live_streams SET is_live = ?, listeners = ? WHERE id = ?`, isLive, *listeners, id)
	} else {
		n, err = s.exec(ctx, `UPDATE live_streams SET is_live = ? WHERE id = ?`, isLive, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update stream status: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return s.GetLiveStream(ctx, id)
}

// Close closes the database connection
func (s *SQLStorage) Close() error {
	return s.db.Close()
}
