package storage

import (
	"sort"
	"time"

	"radioai/internal/models"
)

func articleFromInsert(in models.InsertArticle, now time.Time) models.Article {
	return models.Article{
		Title:           in.Title,
		Content:         in.Content,
		Summary:         in.Summary,
		EnhancedContent: in.EnhancedContent,
		AudioURL:        in.AudioURL,
		SourceURL:       in.SourceURL,
		SourceName:      in.SourceName,
		Category:        in.Category,
		ImageURL:        in.ImageURL,
		Duration:        in.Duration,
		ReadTime:        in.ReadTime,
		PublishedAt:     orNow(in.PublishedAt, now),
		CreatedAt:       now,
		IsProcessed:     false,
		Metadata:        in.Metadata.Clone(),
	}
}

func podcastFromInsert(in models.InsertPodcast, now time.Time) models.Podcast {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	language := in.Language
	if language == "" {
		language = "en"
	}
	return models.Podcast{
		Title:       in.Title,
		Description: in.Description,
		Author:      in.Author,
		ImageURL:    in.ImageURL,
		FeedURL:     in.FeedURL,
		Category:    in.Category,
		Language:    language,
		IsActive:    active,
		CreatedAt:   now,
	}
}

func liveStreamFromInsert(in models.InsertLiveStream, now time.Time) models.LiveStream {
	live := true
	if in.IsLive != nil {
		live = *in.IsLive
	}
	language := in.Language
	if language == "" {
		language = "en"
	}
	return models.LiveStream{
		Title:       in.Title,
		Description: in.Description,
		StreamURL:   in.StreamURL,
		Category:    in.Category,
		IsLive:      live,
		Listeners:   in.Listeners,
		Language:    language,
		CreatedAt:   now,
	}
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

func cloneArticle(a models.Article) *models.Article {
	a.EnhancedContent = cloneString(a.EnhancedContent)
	a.AudioURL = cloneString(a.AudioURL)
	a.ImageURL = cloneString(a.ImageURL)
	a.Duration = cloneInt(a.Duration)
	a.ReadTime = cloneInt(a.ReadTime)
	a.Metadata = a.Metadata.Clone()
	return &a
}

func clonePlaylist(p models.Playlist) models.Playlist {
	p.Description = cloneString(p.Description)
	p.ArticleIDs = append(models.StringList{}, p.ArticleIDs...)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

// sortArticlesByPublished orders newest first, oldest id first on ties
func sortArticlesByPublished(articles []models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		if !articles[i].PublishedAt.Equal(articles[j].PublishedAt) {
			return articles[i].PublishedAt.After(articles[j].PublishedAt)
		}
		return articles[i].ID < articles[j].ID
	})
}

func sortHistory(entries []models.ListeningHistory) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].ListenedAt.Equal(entries[j].ListenedAt) {
			return entries[i].ListenedAt.After(entries[j].ListenedAt)
		}
		return entries[i].ID > entries[j].ID
	})
}

func paginate(articles []models.Article, offset, limit int) []models.Article {
	if offset >= len(articles) {
		return []models.Article{}
	}
	end := offset + limit
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end]
}

func nonNil(articles []models.Article) []models.Article {
	if articles == nil {
		return []models.Article{}
	}
	return articles
}
