package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_KEY", "")
	t.Setenv("API_KEY", "")

	cfg := Load()

	if cfg.Port != 5000 {
		t.Errorf("Expected default port 5000, got %d", cfg.Port)
	}

	if cfg.Storage.Driver != "memory" {
		t.Errorf("Expected default storage driver memory, got %s", cfg.Storage.Driver)
	}

	if !cfg.Storage.Seed {
		t.Error("Expected seeding to be enabled by default")
	}

	if cfg.Cache.AudioTTL != time.Hour {
		t.Errorf("Expected default audio TTL 1h, got %v", cfg.Cache.AudioTTL)
	}

	if cfg.AI.ChatModel != "gpt-4o" || cfg.AI.SpeechModel != "tts-1-hd" || cfg.AI.Voice != "nova" {
		t.Errorf("Unexpected AI defaults %+v", cfg.AI)
	}

	if cfg.AI.MaxSpeechChars != 4096 {
		t.Errorf("Expected 4096 speech chars, got %d", cfg.AI.MaxSpeechChars)
	}

	if cfg.Identity.DemoUserID != 1 {
		t.Errorf("Expected demo user 1, got %d", cfg.Identity.DemoUserID)
	}

	if cfg.Identity.TrustUserHeader {
		t.Error("Expected user header to be untrusted by default")
	}

	if cfg.Ingest.Enabled {
		t.Error("Expected ingestion to be disabled by default")
	}

	if len(cfg.Ingest.Sources) == 0 {
		t.Error("Expected default feed sources")
	}
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "sqlite3")
	t.Setenv("AUDIO_CACHE_TTL", "30m")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_KEY", "sk-test")
	t.Setenv("DEMO_USER_ID", "7")
	t.Setenv("ENABLE_INGEST", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Port)
	}
	if cfg.Storage.Driver != "sqlite3" {
		t.Errorf("Expected sqlite3, got %s", cfg.Storage.Driver)
	}
	if cfg.Cache.AudioTTL != 30*time.Minute {
		t.Errorf("Expected 30m, got %v", cfg.Cache.AudioTTL)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Errorf("Expected API key from OPENAI_KEY, got %q", cfg.AI.APIKey)
	}
	if cfg.Identity.DemoUserID != 7 {
		t.Errorf("Expected demo user 7, got %d", cfg.Identity.DemoUserID)
	}
	if !cfg.Ingest.Enabled {
		t.Error("Expected ingestion enabled")
	}
	if len(cfg.Security.AllowedOrigins) != 2 || cfg.Security.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("Unexpected origins %v", cfg.Security.AllowedOrigins)
	}
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("POLL_INTERVAL", "soon")

	cfg := Load()

	if cfg.Port != 5000 {
		t.Errorf("Expected fallback port 5000, got %d", cfg.Port)
	}
	if cfg.Ingest.PollInterval != 15*time.Minute {
		t.Errorf("Expected fallback poll interval, got %v", cfg.Ingest.PollInterval)
	}
}

func TestLoadConfig_NonPositivePollInterval(t *testing.T) {
	for _, val := range []string{"0s", "-5m"} {
		t.Setenv("POLL_INTERVAL", val)
		if got := Load().Ingest.PollInterval; got != DefaultPollInterval {
			t.Errorf("POLL_INTERVAL=%s: expected %v, got %v", val, DefaultPollInterval, got)
		}
	}
}

func TestParseSourceValue(t *testing.T) {
	tests := []struct {
		value    string
		urls     int
		category string
	}{
		{"https://a/rss, https://b/rss|Sports", 2, "Sports"},
		{"https://a/rss", 1, CategoryAuto},
		{"https://a/rss|", 1, CategoryAuto},
		{" , |Health", 0, "Health"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			urls, category := parseSourceValue(tt.value)
			if len(urls) != tt.urls {
				t.Errorf("Expected %d urls, got %v", tt.urls, urls)
			}
			if category != tt.category {
				t.Errorf("Expected category %s, got %s", tt.category, category)
			}
		})
	}
}

func TestLoadFeedsFromEnv(t *testing.T) {
	t.Setenv("FEED_SOURCE_SPORTS", "https://example.com/sports.xml|Sports")
	t.Setenv("FEED_SOURCE_AGENCY", "https://example.com/wire.xml")

	sources := loadFeedsFromEnv()
	var sports, agency *FeedSource
	for i := range sources {
		switch sources[i].Name {
		case "sports":
			sports = &sources[i]
		case "agency":
			agency = &sources[i]
		}
	}

	if sports == nil || sports.Category != "Sports" {
		t.Errorf("Expected sports source with Sports category, got %+v", sports)
	}
	if agency == nil || agency.Category != CategoryAuto {
		t.Errorf("Expected agency source with auto category, got %+v", agency)
	}
}
