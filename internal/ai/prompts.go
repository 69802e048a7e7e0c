package ai

import (
	"fmt"
	"strings"

	"radioai/internal/models"
)

const (
	enhanceSystemPrompt    = "You are an expert news editor who enhances articles while maintaining journalistic integrity. Always respond with valid JSON."
	summarySystemPrompt    = "You are a news editor who creates clear, concise summaries of articles."
	categorizeSystemPrompt = "You are an expert news categorization system. Analyze the content and provide the most appropriate category."
	topicsSystemPrompt     = "You are a news trend analyst who identifies important topics and themes from multiple articles."
	insightSystemPrompt    = "You are a thoughtful news analyst who provides context and insights about current events."
)

func enhancePrompt(a *models.Article) string {
	return fmt.Sprintf(`You are an expert news editor and content enhancer. Take the news article below and enhance it while keeping it accurate.

Original Article:
Title: %s
Content: %s
Source: %s
Category: %s

Enhance the article by expanding the key points with context and background, adding details that show the full scope of the story, and improving the narrative flow. Keep it factual and balanced.

Also provide a concise 2-3 sentence summary and the estimated reading time in minutes.

Respond with JSON in this exact format:
{
  "enhancedContent": "The enhanced article content here...",
  "summary": "Concise 2-3 sentence summary...",
  "readingTime": 5
}`, a.Title, a.Content, a.SourceName, a.Category)
}

func summaryPrompt(content, title string) string {
	return fmt.Sprintf(`Summarize this news article in 2-3 clear, concise sentences that capture the main points and significance:

Title: %s
Content: %s

Provide a summary that would help someone quickly understand what happened and why it matters.`, title, content)
}

func categorizePrompt(title, content string) string {
	return fmt.Sprintf(`Analyze this news article and categorize it into one of these categories:
%s

Title: %s
Content: %s

Respond with JSON in this format:
{
  "category": "Technology",
  "confidence": 0.95,
  "reasoning": "Brief explanation of why this category was chosen"
}`, "- "+strings.Join(models.Categories, "\n- "), title, truncate(content, categorizeContentLimit))
}

func topicsPrompt(articles []models.Article) string {
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("%s: %s", a.Title, a.Summary))
	}
	return fmt.Sprintf(`Analyze these news articles and extract the top 5-8 trending topics or themes. Focus on current events, technologies, people, or issues that appear frequently or are particularly significant.

Articles:
%s

Respond with JSON in this format:
{
  "topics": ["Topic 1", "Topic 2", "Topic 3"],
  "reasoning": "Brief explanation of the trending themes identified"
}`, strings.Join(lines, "\n\n"))
}

func insightPrompt(articles []models.Article) string {
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, fmt.Sprintf("%s (%s): %s", a.Title, a.Category, a.Summary))
	}
	return fmt.Sprintf(`Based on these recent news articles, provide a brief insight or analysis about current trends, patterns, or significant developments. Write this as if you're a news analyst providing context to listeners.

Recent Articles:
%s

Write a 2-3 sentence insight that connects these stories or highlights what's significant about current events.`, strings.Join(lines, "\n\n"))
}

// speechScript frames article text as a radio bulletin
func speechScript(title, text string) string {
	return fmt.Sprintf("Breaking News: %s\n\n%s\n\nThis was your AI News Radio report.", title, text)
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
