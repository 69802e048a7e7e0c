package aggregator

import (
	"context"
	"fmt"
	"html"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pemistahl/lingua-go"
)

const (
	summaryMaxChars  = 280
	readingWPM       = 200
	speakingWPM      = 150
	defaultLanguage  = "en"
	maxReadableBytes = 5 << 20
)

type contentProcessor struct {
	converter *md.Converter
	policy    *bluemonday.Policy
	detector  lingua.LanguageDetector
}

func newContentProcessor() *contentProcessor {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(
			lingua.English, lingua.German, lingua.French, lingua.Spanish,
			lingua.Italian, lingua.Portuguese, lingua.Dutch,
		).
		Build()

	return &contentProcessor{
		converter: md.NewConverter("", true, nil),
		policy:    bluemonday.StrictPolicy(),
		detector:  detector,
	}
}

// markdown converts feed HTML to markdown; plain text passes through
func (p *contentProcessor) markdown(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "<") {
		return raw
	}
	out, err := p.converter.ConvertString(raw)
	if err != nil {
		return p.plainText(raw)
	}
	return strings.TrimSpace(out)
}

// plainText strips every tag and collapses whitespace
func (p *contentProcessor) plainText(raw string) string {
	// keep words from adjacent blocks apart once tags are dropped
	spaced := strings.ReplaceAll(raw, "<", " <")
	text := html.UnescapeString(p.policy.Sanitize(spaced))
	return strings.Join(strings.Fields(text), " ")
}

func (p *contentProcessor) summary(raw string) string {
	text := p.plainText(raw)
	runes := []rune(text)
	if len(runes) <= summaryMaxChars {
		return text
	}
	return strings.TrimSpace(string(runes[:summaryMaxChars-3])) + "..."
}

func (p *contentProcessor) detectLanguage(text string) string {
	if strings.TrimSpace(text) == "" {
		return defaultLanguage
	}
	language, ok := p.detector.DetectLanguageOf(text)
	if !ok {
		return defaultLanguage
	}
	return strings.ToLower(language.IsoCode639_1().String())
}

// estimateTimes returns the reading time in minutes and the narration
// length in seconds for text
func estimateTimes(text string) (readMinutes, durationSeconds int) {
	words := len(strings.Fields(text))
	readMinutes = int(math.Ceil(float64(words) / readingWPM))
	if readMinutes < 1 {
		readMinutes = 1
	}
	durationSeconds = int(math.Round(float64(words) / speakingWPM * 60))
	return readMinutes, durationSeconds
}

// parseDuration reads itunes durations: "SS", "MM:SS" or "HH:MM:SS"
func parseDuration(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	total := 0
	for _, part := range strings.Split(raw, ":") {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, false
		}
		total = total*60 + n
	}
	return total, true
}

// fetchReadable downloads pageURL and extracts the main article text
func (a *Aggregator) fetchReadable(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid article url %s: %w", pageURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", pageURL, err)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s returned status %d", pageURL, resp.StatusCode)
	}

	article, err := readability.FromReader(io.LimitReader(resp.Body, maxReadableBytes), parsed)
	if err != nil {
		return "", fmt.Errorf("extracting content from %s: %w", pageURL, err)
	}
	return strings.TrimSpace(article.TextContent), nil
}
