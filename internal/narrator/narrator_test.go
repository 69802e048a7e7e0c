package narrator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radioai/internal/cache"
	"radioai/internal/models"
)

type fakeSynth struct {
	calls atomic.Int32
	gate  chan struct{}
	err   error

	mu    sync.Mutex
	texts []string
}

func (f *fakeSynth) SynthesizeSpeech(_ context.Context, text, title string) ([]byte, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.texts = append(f.texts, text)
	f.mu.Unlock()

	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3:" + title), nil
}

func newNarrator(synth Synthesizer) (*Narrator, cache.BlobStore) {
	blobs := cache.NewMemoryBlobStore(cache.NewManager(time.Hour))
	return New(synth, blobs, time.Hour, nil), blobs
}

func TestNarrate_CachesAudio(t *testing.T) {
	synth := &fakeSynth{}
	n, blobs := newNarrator(synth)
	ctx := context.Background()
	article := &models.Article{ID: 4, Title: "Rates", Content: "The bank held rates."}

	first, err := n.Narrate(ctx, article)
	require.NoError(t, err)
	second, err := n.Narrate(ctx, article)
	require.NoError(t, err)

	assert.Equal(t, []byte("mp3:Rates"), first)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, synth.calls.Load())

	_, found, err := blobs.Get(ctx, "audio:4")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNarrate_PrefersEnhancedContent(t *testing.T) {
	synth := &fakeSynth{}
	n, _ := newNarrator(synth)
	enhanced := "Expanded story."

	_, err := n.Narrate(context.Background(), &models.Article{ID: 1, Title: "t", Content: "raw", EnhancedContent: &enhanced})
	require.NoError(t, err)
	assert.Equal(t, []string{"Expanded story."}, synth.texts)
}

func TestNarrate_CollapsesConcurrentRequests(t *testing.T) {
	synth := &fakeSynth{gate: make(chan struct{})}
	n, _ := newNarrator(synth)
	article := &models.Article{ID: 9, Title: "Storm", Content: "Heavy rain."}

	var wg sync.WaitGroup
	results := make([][]byte, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			audio, err := n.Narrate(context.Background(), article)
			assert.NoError(t, err)
			results[i] = audio
		}(i)
	}

	require.Eventually(t, func() bool { return synth.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	// give the other callers time to join the in-flight synthesis
	time.Sleep(20 * time.Millisecond)
	close(synth.gate)
	wg.Wait()

	assert.EqualValues(t, 1, synth.calls.Load())
	for _, audio := range results {
		assert.Equal(t, []byte("mp3:Storm"), audio)
	}
}

func TestNarrate_ErrorNotCached(t *testing.T) {
	synth := &fakeSynth{err: errors.New("quota exceeded")}
	n, blobs := newNarrator(synth)
	ctx := context.Background()
	article := &models.Article{ID: 2, Title: "t", Content: "c"}

	_, err := n.Narrate(ctx, article)
	require.Error(t, err)

	_, found, _ := blobs.Get(ctx, "audio:2")
	assert.False(t, found)

	synth.err = nil
	audio, err := n.Narrate(ctx, article)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3:t"), audio)
	assert.EqualValues(t, 2, synth.calls.Load())
}

func TestInvalidate(t *testing.T) {
	synth := &fakeSynth{}
	n, _ := newNarrator(synth)
	ctx := context.Background()
	article := &models.Article{ID: 3, Title: "t", Content: "c"}

	_, err := n.Narrate(ctx, article)
	require.NoError(t, err)
	require.NoError(t, n.Invalidate(ctx, 3))
	_, err = n.Narrate(ctx, article)
	require.NoError(t, err)

	assert.EqualValues(t, 2, synth.calls.Load())
}
