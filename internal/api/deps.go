package api

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"radioai/internal/ai"
	"radioai/internal/models"
)

// ContentService produces AI derived article content
type ContentService interface {
	EnhanceArticle(ctx context.Context, article *models.Article) (*ai.Enhancement, error)
	GenerateSummary(ctx context.Context, content, title string) (string, error)
	ExtractKeyTopics(ctx context.Context, articles []models.Article) []string
	GenerateNewsInsight(ctx context.Context, articles []models.Article) string
}

// Narrator produces article audio
type Narrator interface {
	Narrate(ctx context.Context, article *models.Article) ([]byte, error)
	Invalidate(ctx context.Context, articleID int64) error
}

// Notifier serves the notification feed
type Notifier interface {
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	Push(userID int64, in models.InsertNotification) models.Notification
	MarkRead(userID, notificationID int64)
}

// PollerStatus reports on feed ingestion and lets operators trigger a poll
type PollerStatus interface {
	IsPolling() bool
	ForcePoll(ctx context.Context, name string) (int, error)
	GetLastPolledTime() map[string]time.Time
}
