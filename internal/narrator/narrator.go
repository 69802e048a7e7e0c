// Package narrator turns articles into cached MP3 narration.
package narrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"radioai/internal/cache"
	"radioai/internal/metrics"
	"radioai/internal/models"
)

// Synthesizer converts text to speech
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, text, title string) ([]byte, error)
}

type Narrator struct {
	synth  Synthesizer
	blobs  cache.BlobStore
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

func New(synth Synthesizer, blobs cache.BlobStore, ttl time.Duration, logger *slog.Logger) *Narrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Narrator{synth: synth, blobs: blobs, ttl: ttl, logger: logger}
}

// Key is the blob cache key for an article's audio
func Key(articleID int64) string {
	return fmt.Sprintf("audio:%d", articleID)
}

// Narrate returns the article's audio, synthesizing it at most once per
// cache lifetime. Concurrent requests for the same article share one
// synthesis.
func (n *Narrator) Narrate(ctx context.Context, article *models.Article) ([]byte, error) {
	key := Key(article.ID)

	cached, found, err := n.blobs.Get(ctx, key)
	if err != nil {
		n.logger.Warn("audio cache lookup failed", "key", key, "error", err)
	}
	if found {
		metrics.RecordNarration(metrics.NarrationHit)
		return cached, nil
	}

	// the shared call must outlive any single caller
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := n.group.Do(key, func() (any, error) {
		audio, err := n.synth.SynthesizeSpeech(sharedCtx, article.NarrationText(), article.Title)
		if err != nil {
			return nil, err
		}
		if err := n.blobs.Set(sharedCtx, key, audio, n.ttl); err != nil {
			n.logger.Warn("audio cache store failed", "key", key, "error", err)
		}
		return audio, nil
	})
	if err != nil {
		metrics.RecordNarration(metrics.NarrationError)
		n.logger.Error("narration failed", "article_id", article.ID, "error", err)
		return nil, err
	}

	metrics.RecordNarration(metrics.NarrationMiss)
	n.logger.Debug("narration synthesized", "article_id", article.ID, "bytes", len(v.([]byte)))
	return v.([]byte), nil
}

// Invalidate drops cached audio, e.g. after the article text changed
func (n *Narrator) Invalidate(ctx context.Context, articleID int64) error {
	return n.blobs.Delete(ctx, Key(articleID))
}
