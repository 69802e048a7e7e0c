// Package ai wraps the OpenAI API for article enhancement, summaries,
// categorization, trend analysis and speech synthesis.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"radioai/internal/config"
	"radioai/internal/metrics"
	"radioai/internal/models"
)

// ErrNotConfigured is returned when no API key is available
var ErrNotConfigured = errors.New("ai service is not configured")

const (
	enhanceMaxTokens    = 2000
	summaryMaxTokens    = 200
	categorizeMaxTokens = 150
	topicsMaxTokens     = 300
	insightMaxTokens    = 200

	categorizeContentLimit = 1000
	topicsArticleLimit     = 10
	insightArticleLimit    = 5

	defaultReadingTime = 5
	minReadingTime     = 1
	maxReadingTime     = 15
)

// Client is the subset of the OpenAI client the service uses
type Client interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// Enhancement is the result of an AI rewrite of an article
type Enhancement struct {
	EnhancedContent string `json:"enhancedContent"`
	Summary         string `json:"summary"`
	ReadingTime     int    `json:"readingTime"`
}

type Service struct {
	client Client
	cfg    config.AIConfig
	logger *slog.Logger
}

// NewService builds a service talking to OpenAI. Without an API key every
// call fails with ErrNotConfigured or falls back to its default.
func NewService(cfg config.AIConfig, logger *slog.Logger) *Service {
	var client Client
	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientConfig)
	}
	return NewServiceWithClient(client, cfg, logger)
}

func NewServiceWithClient(client Client, cfg config.AIConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = openai.GPT4o
	}
	if cfg.SpeechModel == "" {
		cfg.SpeechModel = string(openai.TTSModel1HD)
	}
	if cfg.Voice == "" {
		cfg.Voice = string(openai.VoiceNova)
	}
	if cfg.MaxSpeechChars <= 0 {
		cfg.MaxSpeechChars = 4096
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// Configured reports whether requests can reach the provider
func (s *Service) Configured() bool {
	return s.client != nil
}

// EnhanceArticle rewrites an article with added context. Fields missing from
// the model's answer fall back to the article's own values.
func (s *Service) EnhanceArticle(ctx context.Context, article *models.Article) (*Enhancement, error) {
	content, err := s.chat(ctx, "enhance", enhanceSystemPrompt, enhancePrompt(article), enhanceMaxTokens, true)
	if err != nil {
		return nil, fmt.Errorf("failed to enhance article with AI: %w", err)
	}

	var result struct {
		EnhancedContent string  `json:"enhancedContent"`
		Summary         string  `json:"summary"`
		ReadingTime     float64 `json:"readingTime"`
	}
	if err := json.Unmarshal([]byte(orEmptyObject(content)), &result); err != nil {
		return nil, fmt.Errorf("failed to enhance article with AI: %w", err)
	}

	enhancement := &Enhancement{
		EnhancedContent: result.EnhancedContent,
		Summary:         result.Summary,
		ReadingTime:     clampReadingTime(result.ReadingTime),
	}
	if enhancement.EnhancedContent == "" {
		enhancement.EnhancedContent = article.Content
	}
	if enhancement.Summary == "" {
		enhancement.Summary = article.Summary
	}
	return enhancement, nil
}

// GenerateSummary produces a 2-3 sentence summary
func (s *Service) GenerateSummary(ctx context.Context, content, title string) (string, error) {
	summary, err := s.chat(ctx, "summary", summarySystemPrompt, summaryPrompt(content, title), summaryMaxTokens, false)
	if err != nil {
		return "", fmt.Errorf("failed to generate article summary: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// SynthesizeSpeech returns MP3 audio of the text framed as a news bulletin
func (s *Service) SynthesizeSpeech(ctx context.Context, text, title string) ([]byte, error) {
	if s.client == nil {
		return nil, fmt.Errorf("failed to convert article to audio: %w", ErrNotConfigured)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.cfg.SpeechModel),
		Input:          truncate(speechScript(title, text), s.cfg.MaxSpeechChars),
		Voice:          openai.SpeechVoice(s.cfg.Voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          1.0,
	}

	start := time.Now()
	resp, err := s.client.CreateSpeech(ctx, req)
	if err == nil {
		var audio []byte
		audio, err = io.ReadAll(resp)
		resp.Close()
		if err == nil {
			metrics.RecordAIRequest("speech", nil, time.Since(start))
			return audio, nil
		}
	}
	metrics.RecordAIRequest("speech", err, time.Since(start))
	s.logger.Error("ai request failed", "operation", "speech", "error", err)
	return nil, fmt.Errorf("failed to convert article to audio: %w", err)
}

// CategorizeArticle picks one of the known categories, "Breaking" when unsure
func (s *Service) CategorizeArticle(ctx context.Context, title, content string) string {
	answer, err := s.chat(ctx, "categorize", categorizeSystemPrompt, categorizePrompt(title, content), categorizeMaxTokens, true)
	if err != nil {
		return models.DefaultCategory
	}

	var result struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(orEmptyObject(answer)), &result); err != nil {
		s.logger.Warn("unparseable category answer", "error", err)
		return models.DefaultCategory
	}
	for _, category := range models.Categories {
		if strings.EqualFold(category, strings.TrimSpace(result.Category)) {
			return category
		}
	}
	return models.DefaultCategory
}

// ExtractKeyTopics lists trending themes across the first articles
func (s *Service) ExtractKeyTopics(ctx context.Context, articles []models.Article) []string {
	if len(articles) > topicsArticleLimit {
		articles = articles[:topicsArticleLimit]
	}
	answer, err := s.chat(ctx, "topics", topicsSystemPrompt, topicsPrompt(articles), topicsMaxTokens, true)
	if err != nil {
		return []string{}
	}

	var result struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(orEmptyObject(answer)), &result); err != nil || result.Topics == nil {
		return []string{}
	}
	return result.Topics
}

// GenerateNewsInsight writes a short analysis connecting recent stories
func (s *Service) GenerateNewsInsight(ctx context.Context, articles []models.Article) string {
	if len(articles) > insightArticleLimit {
		articles = articles[:insightArticleLimit]
	}
	insight, err := s.chat(ctx, "insight", insightSystemPrompt, insightPrompt(articles), insightMaxTokens, false)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(insight)
}

func (s *Service) chat(ctx context.Context, operation, system, prompt string, maxTokens int, jsonMode bool) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: s.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	metrics.RecordAIRequest(operation, err, time.Since(start))
	if err != nil {
		s.logger.Error("ai request failed", "operation", operation, "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

func clampReadingTime(v float64) int {
	if v == 0 || math.IsNaN(v) {
		return defaultReadingTime
	}
	minutes := int(math.Round(v))
	if minutes < minReadingTime {
		return minReadingTime
	}
	if minutes > maxReadingTime {
		return maxReadingTime
	}
	return minutes
}

func orEmptyObject(s string) string {
	if strings.TrimSpace(s) == "" {
		return "{}"
	}
	return s
}
