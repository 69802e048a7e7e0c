package notifications

import (
	"context"
	"errors"
	"testing"
	"time"

	"radioai/internal/models"
	"radioai/internal/storage"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func seededService(t *testing.T) *Service {
	t.Helper()
	store := storage.NewMemoryStorage()
	if err := storage.Seed(context.Background(), store, fixedNow); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	svc := NewService(store)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestList_DerivedFeed(t *testing.T) {
	svc := seededService(t)

	feed, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(feed) != 5 {
		t.Fatalf("Expected 5 notifications, got %d", len(feed))
	}

	wantTypes := []models.NotificationType{"breaking", "update", "trending", "breaking", "update"}
	wantTitles := []string{"Breaking News", "News Update", "Trending Now", "Breaking News", "News Update"}
	for i, n := range feed {
		if n.ID != int64(i+1) {
			t.Errorf("notification %d: expected id %d, got %d", i, i+1, n.ID)
		}
		if n.Type != wantTypes[i] || n.Title != wantTitles[i] {
			t.Errorf("notification %d: got type=%s title=%q", i, n.Type, n.Title)
		}
		if n.Read {
			t.Errorf("notification %d: expected unread", i)
		}
		if want := fixedNow.Add(-time.Duration(i) * time.Hour); !n.Timestamp.Equal(want) {
			t.Errorf("notification %d: expected timestamp %v, got %v", i, want, n.Timestamp)
		}
		if n.ArticleID == nil {
			t.Fatalf("notification %d: expected article id", i)
		}
	}
}

func TestList_MessagesFollowNewestArticles(t *testing.T) {
	svc := seededService(t)
	recent, _ := svc.articles.GetArticles(context.Background(), storage.ArticleQuery{Limit: 5})

	feed, _ := svc.List(context.Background(), 1)
	for i, n := range feed {
		if n.Message != "New article: "+recent[i].Title {
			t.Errorf("notification %d: unexpected message %q", i, n.Message)
		}
		if *n.ArticleID != recent[i].ID {
			t.Errorf("notification %d: expected article %d, got %d", i, recent[i].ID, *n.ArticleID)
		}
	}
}

func TestMarkRead(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	svc.MarkRead(1, 2)
	svc.MarkRead(1, 99)

	feed, _ := svc.List(ctx, 1)
	for _, n := range feed {
		if n.Read != (n.ID == 2) {
			t.Errorf("notification %d: unexpected read=%v", n.ID, n.Read)
		}
	}

	other, _ := svc.List(ctx, 2)
	for _, n := range other {
		if n.Read {
			t.Errorf("read state leaked to another user on notification %d", n.ID)
		}
	}
}

func TestPush(t *testing.T) {
	svc := seededService(t)
	ctx := context.Background()

	first := svc.Push(1, models.InsertNotification{Title: "Reminder", Message: "Morning briefing"})
	second := svc.Push(1, models.InsertNotification{Title: "Live", Message: "Stream starting"})
	if first.ID <= 5 || second.ID <= first.ID {
		t.Fatalf("Unexpected custom ids %d, %d", first.ID, second.ID)
	}
	if first.Type != models.NotificationCustom {
		t.Errorf("Expected custom type, got %s", first.Type)
	}

	svc.MarkRead(1, first.ID)

	feed, _ := svc.List(ctx, 1)
	if len(feed) != 7 {
		t.Fatalf("Expected 7 notifications, got %d", len(feed))
	}
	if feed[0].ID != second.ID || feed[1].ID != first.ID {
		t.Errorf("Expected custom notifications newest first, got ids %d, %d", feed[0].ID, feed[1].ID)
	}
	if feed[0].Read || !feed[1].Read {
		t.Errorf("Unexpected read flags %v, %v", feed[0].Read, feed[1].Read)
	}

	if other, _ := svc.List(ctx, 2); len(other) != 5 {
		t.Errorf("Expected custom notifications to be per user, got %d items", len(other))
	}
}

type failingLister struct{}

func (failingLister) GetArticles(context.Context, storage.ArticleQuery) ([]models.Article, error) {
	return nil, errors.New("store offline")
}

func TestList_StoreError(t *testing.T) {
	svc := NewService(failingLister{})
	if _, err := svc.List(context.Background(), 1); err == nil {
		t.Error("Expected error from failing store")
	}
}
