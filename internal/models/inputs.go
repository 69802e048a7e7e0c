package models

import "time"

// InsertUser is the payload for creating a user
type InsertUser struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required"`
}

// InsertArticle is the payload for creating an article
type InsertArticle struct {
	Title           string    `json:"title" validate:"required"`
	Content         string    `json:"content" validate:"required"`
	Summary         string    `json:"summary" validate:"required"`
	EnhancedContent *string   `json:"enhancedContent"`
	AudioURL        *string   `json:"audioUrl"`
	SourceURL       string    `json:"sourceUrl" validate:"required"`
	SourceName      string    `json:"sourceName" validate:"required"`
	Category        string    `json:"category" validate:"required,category"`
	ImageURL        *string   `json:"imageUrl"`
	Duration        *int      `json:"duration" validate:"omitempty,gte=0"`
	ReadTime        *int      `json:"readTime" validate:"omitempty,gte=0"`
	PublishedAt     time.Time `json:"publishedAt"`
	Metadata        Metadata  `json:"metadata"`
}

// ArticleUpdate is a partial article update; nil fields are left unchanged
type ArticleUpdate struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Content         *string  `json:"content,omitempty" validate:"omitempty,min=1"`
	Summary         *string  `json:"summary,omitempty" validate:"omitempty,min=1"`
	EnhancedContent *string  `json:"enhancedContent,omitempty"`
	AudioURL        *string  `json:"audioUrl,omitempty"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,category"`
	ImageURL        *string  `json:"imageUrl,omitempty"`
	Duration        *int     `json:"duration,omitempty" validate:"omitempty,gte=0"`
	ReadTime        *int     `json:"readTime,omitempty" validate:"omitempty,gte=0"`
	IsProcessed     *bool    `json:"isProcessed,omitempty"`
	Metadata        Metadata `json:"metadata,omitempty"`
}

// InsertFavorite is the payload for saving an article
type InsertFavorite struct {
	UserID    int64 `json:"-"`
	ArticleID int64 `json:"articleId" validate:"required,gt=0"`
}

// InsertDownload is the payload for marking an article as downloaded
type InsertDownload struct {
	UserID    int64 `json:"-"`
	ArticleID int64 `json:"articleId" validate:"required,gt=0"`
}

// InsertPlaylist is the payload for creating a playlist
type InsertPlaylist struct {
	UserID      int64    `json:"-"`
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description"`
	ArticleIDs  []string `json:"articleIds" validate:"dive,numeric"`
}

// PlaylistUpdate is a partial playlist update
type PlaylistUpdate struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description,omitempty"`
	ArticleIDs  StringList `json:"articleIds,omitempty" validate:"omitempty,dive,numeric"`
}

// InsertListeningHistory is the payload for recording playback progress
type InsertListeningHistory struct {
	UserID    int64   `json:"-"`
	ArticleID int64   `json:"articleId" validate:"required,gt=0"`
	Progress  float64 `json:"progress" validate:"gte=0"`
	Completed bool    `json:"completed"`

	// ListenedAt overrides the recorded time; zero means now
	ListenedAt time.Time `json:"-"`
}

// InsertPodcast is the payload for creating a podcast
type InsertPodcast struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	ImageURL    *string `json:"imageUrl"`
	FeedURL     string  `json:"feedUrl" validate:"required,url"`
	Category    string  `json:"category" validate:"required,category"`
	Language    string  `json:"language"`
	IsActive    *bool   `json:"isActive"`
}

// InsertPodcastEpisode is the payload for adding an episode
type InsertPodcastEpisode struct {
	PodcastID   int64     `json:"podcastId" validate:"required,gt=0"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	AudioURL    string    `json:"audioUrl" validate:"required"`
	Duration    *int      `json:"duration" validate:"omitempty,gte=0"`
	PublishedAt time.Time `json:"publishedAt"`
}

// InsertShare is the payload for recording a share
type InsertShare struct {
	UserID     int64  `json:"-"`
	ArticleID  *int64 `json:"articleId" validate:"omitempty,gt=0"`
	PlaylistID *int64 `json:"playlistId" validate:"omitempty,gt=0"`
	Platform   string `json:"platform" validate:"required,max=64"`
}

// InsertLiveStream is the payload for creating a live stream
type InsertLiveStream struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	StreamURL   string `json:"streamUrl" validate:"required"`
	Category    string `json:"category" validate:"required,category"`
	IsLive      *bool  `json:"isLive"`
	Listeners   int    `json:"listeners" validate:"gte=0"`
	Language    string `json:"language"`
}

// StreamStatusUpdate changes the live state of a stream
type StreamStatusUpdate struct {
	IsLive    *bool `json:"isLive" validate:"required"`
	Listeners *int  `json:"listeners" validate:"omitempty,gte=0"`
}

// InsertNotification is the payload for pushing a custom notification
type InsertNotification struct {
	Title     string `json:"title" validate:"required,max=200"`
	Message   string `json:"message" validate:"required,max=1000"`
	ArticleID *int64 `json:"articleId" validate:"omitempty,gt=0"`
}

// MarkReadRequest marks a single notification as read
type MarkReadRequest struct {
	NotificationID FlexibleID `json:"notificationId" validate:"required,gt=0"`
}
