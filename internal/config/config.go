package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// FeedSource is a named group of feed URLs ingested into one category.
// Category "auto" asks the AI categorizer to classify each item.
type FeedSource struct {
	Name     string
	URLs     []string
	Category string
}

// DefaultPollInterval applies when POLL_INTERVAL is unset or not positive
const DefaultPollInterval = 15 * time.Minute

// CategoryAuto marks a feed source whose items are classified individually
const CategoryAuto = "auto"

// SecurityConfig represents security configuration
type SecurityConfig struct {
	EnableRateLimit       bool
	RateLimitPerSecond    float64
	RateLimitBurst        int
	EnableCORS            bool
	AllowedOrigins        []string
	EnableSecurityHeaders bool
	MaxRequestSize        int64
	EnableRequestID       bool
}

// StorageConfig selects and configures the store backend
type StorageConfig struct {
	Driver  string // memory, sqlite3 or postgres
	DSN     string
	DataDir string
	Seed    bool
}

// CacheConfig configures the audio and query caches
type CacheConfig struct {
	Backend       string // memory or redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AudioTTL      time.Duration
	QueryTTL      time.Duration
}

// AIConfig configures the OpenAI backed content service
type AIConfig struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	SpeechModel    string
	Voice          string
	Timeout        time.Duration
	MaxSpeechChars int
}

// IdentityConfig controls how the requesting user is resolved
type IdentityConfig struct {
	DemoUserID      int64
	TrustUserHeader bool
	UserHeader      string
}

// IngestConfig configures feed polling
type IngestConfig struct {
	Enabled       bool
	PollInterval  time.Duration
	FetchFullText bool
	Sources       []FeedSource
}

type Config struct {
	Port          int
	LogLevel      string
	LogFormat     string
	EnableSPA     bool
	SPADir        string
	EnableSwagger bool
	EnableMetrics bool
	Storage       StorageConfig
	Cache         CacheConfig
	AI            AIConfig
	Identity      IdentityConfig
	Ingest        IngestConfig
	Security      SecurityConfig
}

// Load reads the configuration from the environment, after loading an
// optional .env file from the working directory.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnvAsInt("PORT", 5000),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		EnableSPA:     getEnvAsBool("ENABLE_SPA", true),
		SPADir:        getEnv("SPA_DIR", "./dist/public"),
		EnableSwagger: getEnvAsBool("ENABLE_SWAGGER", true),
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		Storage:       loadStorageConfig(),
		Cache:         loadCacheConfig(),
		AI:            loadAIConfig(),
		Identity:      loadIdentityConfig(),
		Ingest:        loadIngestConfig(),
		Security:      loadSecurityConfig(),
	}
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Driver:  getEnv("STORAGE_DRIVER", "memory"),
		DSN:     getEnv("DATABASE_URL", ""),
		DataDir: getEnv("DATA_DIR", "./data"),
		Seed:    getEnvAsBool("SEED_DATA", true),
	}
}

func loadCacheConfig() CacheConfig {
	return CacheConfig{
		Backend:       getEnv("CACHE_BACKEND", "memory"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		AudioTTL:      getEnvAsDuration("AUDIO_CACHE_TTL", time.Hour),
		QueryTTL:      getEnvAsDuration("QUERY_CACHE_TTL", 30*time.Second),
	}
}

func loadAIConfig() AIConfig {
	return AIConfig{
		APIKey:         firstEnv("OPENAI_API_KEY", "OPENAI_KEY", "API_KEY"),
		BaseURL:        getEnv("OPENAI_BASE_URL", ""),
		ChatModel:      getEnv("OPENAI_CHAT_MODEL", "gpt-4o"),
		SpeechModel:    getEnv("OPENAI_SPEECH_MODEL", "tts-1-hd"),
		Voice:          getEnv("OPENAI_VOICE", "nova"),
		Timeout:        getEnvAsDuration("AI_TIMEOUT", 60*time.Second),
		MaxSpeechChars: getEnvAsInt("MAX_SPEECH_CHARS", 4096),
	}
}

func loadIdentityConfig() IdentityConfig {
	return IdentityConfig{
		DemoUserID:      getEnvAsInt64("DEMO_USER_ID", 1),
		TrustUserHeader: getEnvAsBool("TRUST_USER_HEADER", false),
		UserHeader:      getEnv("USER_HEADER", "X-User-ID"),
	}
}

func loadIngestConfig() IngestConfig {
	sources := loadFeedsFromEnv()
	if len(sources) == 0 {
		sources = getDefaultFeeds()
	}
	interval := getEnvAsDuration("POLL_INTERVAL", DefaultPollInterval)
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return IngestConfig{
		Enabled:       getEnvAsBool("ENABLE_INGEST", false),
		PollInterval:  interval,
		FetchFullText: getEnvAsBool("FETCH_FULL_TEXT", false),
		Sources:       sources,
	}
}

func loadSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableRateLimit:       getEnvAsBool("ENABLE_RATE_LIMIT", true),
		RateLimitPerSecond:    getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10.0),
		RateLimitBurst:        getEnvAsInt("RATE_LIMIT_BURST", 20),
		EnableCORS:            getEnvAsBool("ENABLE_CORS", true),
		AllowedOrigins:        getEnvAsStringSlice("ALLOWED_ORIGINS", []string{"*"}),
		EnableSecurityHeaders: getEnvAsBool("ENABLE_SECURITY_HEADERS", true),
		MaxRequestSize:        getEnvAsInt64("MAX_REQUEST_SIZE", 1<<20), // 1MB
		EnableRequestID:       getEnvAsBool("ENABLE_REQUEST_ID", true),
	}
}

func loadFeedsFromEnv() []FeedSource {
	var sources []FeedSource

	// Look for FEED_SOURCE_* environment variables
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "FEED_SOURCE_") {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		name := strings.ToLower(strings.TrimPrefix(parts[0], "FEED_SOURCE_"))
		urls, category := parseSourceValue(parts[1])
		if len(urls) == 0 {
			continue
		}
		sources = append(sources, FeedSource{Name: name, URLs: urls, Category: category})
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	return sources
}

func parseSourceValue(value string) ([]string, string) {
	// Format: "url1,url2|Category"; without a category items are auto classified

	parts := strings.SplitN(value, "|", 2)
	var urls []string
	for _, u := range strings.Split(parts[0], ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	category := CategoryAuto
	if len(parts) > 1 {
		if c := strings.TrimSpace(parts[1]); c != "" {
			category = c
		}
	}

	return urls, category
}

func getDefaultFeeds() []FeedSource {
	return []FeedSource{
		{
			Name:     "bbc",
			URLs:     []string{"https://feeds.bbci.co.uk/news/world/rss.xml"},
			Category: CategoryAuto,
		},
		{
			Name: "technology",
			URLs: []string{
				"https://feeds.arstechnica.com/arstechnica/index",
				"https://www.technologyreview.com/feed/",
			},
			Category: "Technology",
		},
		{
			Name:     "science",
			URLs:     []string{"https://www.sciencedaily.com/rss/all.xml"},
			Category: "Science",
		},
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if val := os.Getenv(k); val != "" {
			return val
		}
	}
	return ""
}

func getEnv(key string, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

func getEnvAsFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if floatVal, err := strconv.ParseFloat(val, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.ParseInt(val, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsStringSlice(key string, defaultVal []string) []string {
	if val := os.Getenv(key); val != "" {
		items := strings.Split(val, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return items
	}
	return defaultVal
}
