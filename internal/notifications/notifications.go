// Package notifications derives a per-user notification feed from the most
// recent articles, plus notifications pushed explicitly.
package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"radioai/internal/models"
	"radioai/internal/storage"
)

const (
	feedSize = 5
	// custom notification ids start above the derived ones
	customIDBase = 1000
)

var feedKinds = []struct {
	kind  models.NotificationType
	title string
}{
	{models.NotificationBreaking, "Breaking News"},
	{models.NotificationUpdate, "News Update"},
	{models.NotificationTrending, "Trending Now"},
}

// ArticleLister is the slice of the store the feed reads from
type ArticleLister interface {
	GetArticles(ctx context.Context, q storage.ArticleQuery) ([]models.Article, error)
}

// Service keeps read state and custom notifications for the process lifetime
type Service struct {
	articles ArticleLister
	now      func() time.Time

	mu     sync.Mutex
	read   map[int64]map[int64]bool
	custom map[int64][]models.Notification
	nextID int64
}

func NewService(articles ArticleLister) *Service {
	return &Service{
		articles: articles,
		now:      time.Now,
		read:     make(map[int64]map[int64]bool),
		custom:   make(map[int64][]models.Notification),
		nextID:   customIDBase,
	}
}

// List returns the user's custom notifications newest first, followed by one
// notification per recent article.
func (s *Service) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	recent, err := s.articles.GetArticles(ctx, storage.ArticleQuery{Limit: feedSize})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent articles: %w", err)
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	read := s.read[userID]
	custom := s.custom[userID]
	feed := make([]models.Notification, 0, len(custom)+len(recent))

	for i := len(custom) - 1; i >= 0; i-- {
		n := custom[i]
		n.Read = read[n.ID]
		feed = append(feed, n)
	}

	for i, article := range recent {
		kind := feedKinds[i%len(feedKinds)]
		id := int64(i + 1)
		articleID := article.ID
		feed = append(feed, models.Notification{
			ID:        id,
			Type:      kind.kind,
			Title:     kind.title,
			Message:   "New article: " + article.Title,
			Read:      read[id],
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
			ArticleID: &articleID,
		})
	}
	return feed, nil
}

// Push adds a custom notification for the user
func (s *Service) Push(userID int64, in models.InsertNotification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	n := models.Notification{
		ID:        s.nextID,
		Type:      models.NotificationCustom,
		Title:     in.Title,
		Message:   in.Message,
		Timestamp: s.now(),
		ArticleID: in.ArticleID,
	}
	s.custom[userID] = append(s.custom[userID], n)
	return n
}

// MarkRead records the notification as read. Unknown ids are accepted.
func (s *Service) MarkRead(userID, notificationID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.read[userID] == nil {
		s.read[userID] = make(map[int64]bool)
	}
	s.read[userID][notificationID] = true
}
