package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radioai/internal/config"
	"radioai/internal/models"
)

// fakeOpenAI answers chat and speech requests with canned payloads and
// records what it received.
type fakeOpenAI struct {
	mu     sync.Mutex
	chat   []map[string]any
	speech []map[string]any
	answer string
	status int
	audio  []byte
}

func (f *fakeOpenAI) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		status := f.status
		f.mu.Unlock()

		if status != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			io.WriteString(w, `{"error":{"message":"upstream failure","type":"server_error"}}`)
			return
		}

		switch r.URL.Path {
		case "/v1/chat/completions":
			f.mu.Lock()
			f.chat = append(f.chat, body)
			answer := f.answer
			f.mu.Unlock()

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"id":     "chatcmpl-test",
				"object": "chat.completion",
				"model":  body["model"],
				"choices": []map[string]any{{
					"index":         0,
					"message":       map[string]any{"role": "assistant", "content": answer},
					"finish_reason": "stop",
				}},
			})
		case "/v1/audio/speech":
			f.mu.Lock()
			f.speech = append(f.speech, body)
			f.mu.Unlock()

			w.Header().Set("Content-Type", "audio/mpeg")
			w.Write(f.audio)
		default:
			http.NotFound(w, r)
		}
	})
}

func newTestService(t *testing.T, fake *fakeOpenAI, cfg config.AIConfig) *Service {
	t.Helper()
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	cfg.APIKey = "test-key"
	cfg.BaseURL = server.URL + "/v1"
	return NewService(cfg, nil)
}

func sampleArticle() *models.Article {
	return &models.Article{
		ID:         1,
		Title:      "Fusion milestone",
		Content:    "Researchers reported net energy gain.",
		Summary:    "Net energy gain reported.",
		SourceName: "Science Daily",
		Category:   "Science",
	}
}

func TestEnhanceArticle(t *testing.T) {
	fake := &fakeOpenAI{answer: `{"enhancedContent":"Longer story.","summary":"Short.","readingTime":7}`}
	svc := newTestService(t, fake, config.AIConfig{})

	result, err := svc.EnhanceArticle(context.Background(), sampleArticle())
	require.NoError(t, err)
	assert.Equal(t, &Enhancement{EnhancedContent: "Longer story.", Summary: "Short.", ReadingTime: 7}, result)

	require.Len(t, fake.chat, 1)
	req := fake.chat[0]
	assert.Equal(t, "gpt-4o", req["model"])
	assert.EqualValues(t, 2000, req["max_tokens"])
	assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])
}

func TestEnhanceArticle_Fallbacks(t *testing.T) {
	tests := []struct {
		name        string
		answer      string
		readingTime int
	}{
		{"empty answer", "", 5},
		{"missing fields", `{}`, 5},
		{"reading time too long", `{"readingTime":40}`, 15},
		{"reading time negative", `{"readingTime":-3}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &fakeOpenAI{answer: tt.answer}, config.AIConfig{})
			article := sampleArticle()

			result, err := svc.EnhanceArticle(context.Background(), article)
			require.NoError(t, err)
			assert.Equal(t, article.Content, result.EnhancedContent)
			assert.Equal(t, article.Summary, result.Summary)
			assert.Equal(t, tt.readingTime, result.ReadingTime)
		})
	}
}

func TestEnhanceArticle_UpstreamError(t *testing.T) {
	svc := newTestService(t, &fakeOpenAI{status: http.StatusInternalServerError}, config.AIConfig{})

	_, err := svc.EnhanceArticle(context.Background(), sampleArticle())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "failed to enhance article with AI: "))
}

func TestGenerateSummary(t *testing.T) {
	fake := &fakeOpenAI{answer: "  A concise summary.  "}
	svc := newTestService(t, fake, config.AIConfig{ChatModel: "gpt-4o-mini"})

	summary, err := svc.GenerateSummary(context.Background(), "content", "title")
	require.NoError(t, err)
	assert.Equal(t, "A concise summary.", summary)

	require.Len(t, fake.chat, 1)
	assert.Equal(t, "gpt-4o-mini", fake.chat[0]["model"])
	assert.EqualValues(t, 200, fake.chat[0]["max_tokens"])
	assert.Nil(t, fake.chat[0]["response_format"])
}

func TestSynthesizeSpeech(t *testing.T) {
	fake := &fakeOpenAI{audio: []byte("ID3-audio")}
	svc := newTestService(t, fake, config.AIConfig{MaxSpeechChars: 40})

	audio, err := svc.SynthesizeSpeech(context.Background(), strings.Repeat("word ", 50), "Fusion")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-audio"), audio)

	require.Len(t, fake.speech, 1)
	req := fake.speech[0]
	assert.Equal(t, "tts-1-hd", req["model"])
	assert.Equal(t, "nova", req["voice"])
	assert.EqualValues(t, 1.0, req["speed"])

	input, _ := req["input"].(string)
	assert.True(t, strings.HasPrefix(input, "Breaking News: Fusion\n\n"))
	assert.Len(t, []rune(input), 40)
}

func TestSynthesizeSpeech_Framing(t *testing.T) {
	fake := &fakeOpenAI{audio: []byte("mp3")}
	svc := newTestService(t, fake, config.AIConfig{})

	_, err := svc.SynthesizeSpeech(context.Background(), "Body text.", "Headline")
	require.NoError(t, err)
	assert.Equal(t, "Breaking News: Headline\n\nBody text.\n\nThis was your AI News Radio report.", fake.speech[0]["input"])
}

func TestSynthesizeSpeech_Error(t *testing.T) {
	svc := newTestService(t, &fakeOpenAI{status: http.StatusBadGateway}, config.AIConfig{})

	_, err := svc.SynthesizeSpeech(context.Background(), "text", "title")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to convert article to audio")
}

func TestCategorizeArticle(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		status int
		want   string
	}{
		{"known category", `{"category":"Technology","confidence":0.9}`, 0, "Technology"},
		{"case insensitive", `{"category":"sports"}`, 0, "Sports"},
		{"unknown category", `{"category":"Weather"}`, 0, "Breaking"},
		{"invalid json", `not json`, 0, "Breaking"},
		{"upstream error", "", http.StatusInternalServerError, "Breaking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &fakeOpenAI{answer: tt.answer, status: tt.status}, config.AIConfig{})
			assert.Equal(t, tt.want, svc.CategorizeArticle(context.Background(), "title", "content"))
		})
	}
}

func TestCategorizeArticle_TruncatesContent(t *testing.T) {
	fake := &fakeOpenAI{answer: `{"category":"Business"}`}
	svc := newTestService(t, fake, config.AIConfig{})

	long := strings.Repeat("a", 1500) + "TAIL"
	svc.CategorizeArticle(context.Background(), "title", long)

	messages, _ := fake.chat[0]["messages"].([]any)
	require.Len(t, messages, 2)
	user, _ := messages[1].(map[string]any)
	prompt, _ := user["content"].(string)
	assert.NotContains(t, prompt, "TAIL")
	assert.Contains(t, prompt, strings.Repeat("a", 1000))
}

func TestExtractKeyTopics(t *testing.T) {
	fake := &fakeOpenAI{answer: `{"topics":["AI","Climate"]}`}
	svc := newTestService(t, fake, config.AIConfig{})

	articles := make([]models.Article, 12)
	for i := range articles {
		articles[i] = models.Article{Title: "Article " + string(rune('A'+i)), Summary: "summary"}
	}

	topics := svc.ExtractKeyTopics(context.Background(), articles)
	assert.Equal(t, []string{"AI", "Climate"}, topics)

	messages, _ := fake.chat[0]["messages"].([]any)
	user, _ := messages[1].(map[string]any)
	prompt, _ := user["content"].(string)
	assert.Contains(t, prompt, "Article J: summary")
	assert.NotContains(t, prompt, "Article K")
}

func TestExtractKeyTopics_Failure(t *testing.T) {
	svc := newTestService(t, &fakeOpenAI{status: http.StatusInternalServerError}, config.AIConfig{})

	topics := svc.ExtractKeyTopics(context.Background(), []models.Article{{Title: "x"}})
	assert.NotNil(t, topics)
	assert.Empty(t, topics)
}

func TestGenerateNewsInsight(t *testing.T) {
	fake := &fakeOpenAI{answer: "Markets and tech are converging."}
	svc := newTestService(t, fake, config.AIConfig{})

	insight := svc.GenerateNewsInsight(context.Background(), []models.Article{{Title: "t", Category: "Business", Summary: "s"}})
	assert.Equal(t, "Markets and tech are converging.", insight)

	svc = newTestService(t, &fakeOpenAI{status: http.StatusInternalServerError}, config.AIConfig{})
	assert.Equal(t, "", svc.GenerateNewsInsight(context.Background(), nil))
}

func TestNotConfigured(t *testing.T) {
	svc := NewService(config.AIConfig{}, nil)
	ctx := context.Background()

	assert.False(t, svc.Configured())

	_, err := svc.EnhanceArticle(ctx, sampleArticle())
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = svc.GenerateSummary(ctx, "c", "t")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	_, err = svc.SynthesizeSpeech(ctx, "c", "t")
	assert.True(t, errors.Is(err, ErrNotConfigured))

	assert.Equal(t, "Breaking", svc.CategorizeArticle(ctx, "t", "c"))
	assert.Empty(t, svc.ExtractKeyTopics(ctx, nil))
	assert.Equal(t, "", svc.GenerateNewsInsight(ctx, nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo wörld", 5))
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "unbounded", truncate("unbounded", 0))
}
