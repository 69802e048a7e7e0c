package models

import (
	"strconv"
	"time"
)

// Categories is the fixed set of news categories an article can carry
var Categories = []string{
	"Breaking",
	"Politics",
	"Technology",
	"Business",
	"Sports",
	"Health",
	"Science",
	"Entertainment",
}

// AllCategories is the pseudo category that disables category filtering
const AllCategories = "All"

// DefaultCategory is used when a category cannot be determined
const DefaultCategory = "Breaking"

// IsValidCategory reports whether category belongs to Categories
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// User is an account of the application
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// Article is a news item that can be read or narrated
type Article struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Content         string    `json:"content" db:"content"`
	Summary         string    `json:"summary" db:"summary"`
	EnhancedContent *string   `json:"enhancedContent" db:"enhanced_content"`
	AudioURL        *string   `json:"audioUrl" db:"audio_url"`
	SourceURL       string    `json:"sourceUrl" db:"source_url"`
	SourceName      string    `json:"sourceName" db:"source_name"`
	Category        string    `json:"category" db:"category"`
	ImageURL        *string   `json:"imageUrl" db:"image_url"`
	Duration        *int      `json:"duration" db:"duration"`
	ReadTime        *int      `json:"readTime" db:"read_time"`
	PublishedAt     time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	IsProcessed     bool      `json:"isProcessed" db:"is_processed"`
	Metadata        Metadata  `json:"metadata" db:"metadata"`
}

// NarrationText returns the text to read aloud, preferring the enhanced content
func (a *Article) NarrationText() string {
	if a.EnhancedContent != nil && *a.EnhancedContent != "" {
		return *a.EnhancedContent
	}
	return a.Content
}

// Apply returns a copy of the article with the non-nil fields of u replaced
func (a Article) Apply(u ArticleUpdate) Article {
	if u.Title != nil {
		a.Title = *u.Title
	}
	if u.Content != nil {
		a.Content = *u.Content
	}
	if u.Summary != nil {
		a.Summary = *u.Summary
	}
	if u.EnhancedContent != nil {
		a.EnhancedContent = u.EnhancedContent
	}
	if u.AudioURL != nil {
		a.AudioURL = u.AudioURL
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.ImageURL != nil {
		a.ImageURL = u.ImageURL
	}
	if u.Duration != nil {
		a.Duration = u.Duration
	}
	if u.ReadTime != nil {
		a.ReadTime = u.ReadTime
	}
	if u.IsProcessed != nil {
		a.IsProcessed = *u.IsProcessed
	}
	if u.Metadata != nil {
		a.Metadata = u.Metadata
	}
	return a
}

// Favorite links a user to an article they saved
type Favorite struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ArticleID int64     `json:"articleId" db:"article_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// DownloadKey identifies an offline download marker
func DownloadKey(userID, articleID int64) string {
	return strconv.FormatInt(userID, 10) + "-" + strconv.FormatInt(articleID, 10)
}

// Playlist is an ordered, named list of articles owned by a user
type Playlist struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"userId" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description" db:"description"`
	ArticleIDs  StringList `json:"articleIds" db:"article_ids"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Apply returns a copy of the playlist with the non-nil fields of u replaced
func (p Playlist) Apply(u PlaylistUpdate) Playlist {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.ArticleIDs != nil {
		p.ArticleIDs = u.ArticleIDs
	}
	return p
}

// ListeningHistory tracks how far a user got through an article
type ListeningHistory struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	ArticleID  int64     `json:"articleId" db:"article_id"`
	Progress   float64   `json:"progress" db:"progress"`
	Completed  bool      `json:"completed" db:"completed"`
	ListenedAt time.Time `json:"listenedAt" db:"listened_at"`
}

// Podcast is a show with episodes
type Podcast struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Author      string    `json:"author" db:"author"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	FeedURL     string    `json:"feedUrl" db:"feed_url"`
	Category    string    `json:"category" db:"category"`
	Language    string    `json:"language" db:"language"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// PodcastEpisode is a single audio episode
type PodcastEpisode struct {
	ID          int64     `json:"id" db:"id"`
	PodcastID   int64     `json:"podcastId" db:"podcast_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	AudioURL    string    `json:"audioUrl" db:"audio_url"`
	Duration    *int      `json:"duration" db:"duration"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Share records that content was shared to an external platform
type Share struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	ArticleID  *int64    `json:"articleId" db:"article_id"`
	PlaylistID *int64    `json:"playlistId" db:"playlist_id"`
	Platform   string    `json:"platform" db:"platform"`
	SharedAt   time.Time `json:"sharedAt" db:"shared_at"`
}

// LiveStream is a continuously broadcasting radio stream
type LiveStream struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	StreamURL   string    `json:"streamUrl" db:"stream_url"`
	Category    string    `json:"category" db:"category"`
	IsLive      bool      `json:"isLive" db:"is_live"`
	Listeners   int       `json:"listeners" db:"listeners"`
	Language    string    `json:"language" db:"language"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// NotificationType classifies a notification in the feed
type NotificationType string

const (
	NotificationBreaking NotificationType = "breaking"
	NotificationUpdate   NotificationType = "update"
	NotificationTrending NotificationType = "trending"
	NotificationCustom   NotificationType = "custom"
)

// Notification is a feed item pointing at recent content
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Timestamp time.Time        `json:"timestamp"`
	ArticleID *int64           `json:"articleId,omitempty"`
}

// Progress is the playback position reported for a single article
type Progress struct {
	Progress  float64 `json:"progress"`
	Completed bool    `json:"completed"`
}
