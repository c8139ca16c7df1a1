package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DEFAULT_PORT              = "5000"
	DEFAULT_REMOTE_PROVIDER   = "gemini"
	DEFAULT_GEMINI_MODEL      = "gemini-1.5-flash"
	DEFAULT_OPENAI_MODEL      = "gpt-4o-mini"
	DEFAULT_NETWORK_TIMEOUT   = 10 * time.Second
	DEFAULT_REVIEWS_TABLE     = "Reviews"
	DEFAULT_AWS_REGION        = "us-west-2"
	DEFAULT_ANNOTATOR_WORKERS = 4
)

func GetString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("[Config] Invalid integer, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

func GetBool(key string, defaultValue bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("[Config] Invalid boolean, using default",
			slog.String("key", key),
			slog.String("value", raw))
		return defaultValue
	}
	return value
}

// GetDuration accepts Go duration strings ("5s") or a bare number of seconds.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	slog.Warn("[Config] Invalid duration, using default",
		slog.String("key", key),
		slog.String("value", raw),
		slog.Duration("default", defaultValue))
	return defaultValue
}

// AnalysisConfig drives the coordinator tiers.
type AnalysisConfig struct {
	ServiceURL     string
	ServiceTimeout time.Duration
	ServiceRetries int
	Provider       string
	Model          string
	BaseURL        string
	RemoteTimeout  time.Duration
	GeminiAPIKey   string
	OpenAIAPIKey   string
}

func GetAnalysisConfig() AnalysisConfig {
	provider := strings.ToLower(GetString("REMOTE_PROVIDER", DEFAULT_REMOTE_PROVIDER))
	defaultModel := DEFAULT_GEMINI_MODEL
	if provider == "openai" {
		defaultModel = DEFAULT_OPENAI_MODEL
	}

	return AnalysisConfig{
		ServiceURL:     strings.TrimRight(GetString("ANALYSIS_SERVICE_URL", ""), "/"),
		ServiceTimeout: GetDuration("ANALYSIS_SERVICE_TIMEOUT", DEFAULT_NETWORK_TIMEOUT),
		ServiceRetries: GetInt("ANALYSIS_SERVICE_RETRIES", 1),
		Provider:       provider,
		Model:          GetString("REMOTE_MODEL", defaultModel),
		BaseURL:        GetString("REMOTE_BASE_URL", ""),
		RemoteTimeout:  GetDuration("REMOTE_TIMEOUT", DEFAULT_NETWORK_TIMEOUT),
		GeminiAPIKey:   GetString("GEMINI_API_KEY", ""),
		OpenAIAPIKey:   GetString("OPENAI_API_KEY", ""),
	}
}

// ServerAPIKey is the key the API server uses for its own remote calls.
func (c AnalysisConfig) ServerAPIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

type ServerConfig struct {
	Port          string
	LocalFallback bool
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:          GetString("PORT", DEFAULT_PORT),
		LocalFallback: GetBool("SERVER_LOCAL_FALLBACK", false),
	}
}

type ValkeyConfig struct {
	Address  string
	Password string
	TLS      bool
}

func GetValkeyConfig() ValkeyConfig {
	return ValkeyConfig{
		Address:  GetString("VALKEY_INIT_ADDRESS", ""),
		Password: GetString("VALKEY_PASSWORD", ""),
		TLS:      GetBool("VALKEY_TLS", false),
	}
}

type ReviewSourceConfig struct {
	SeedFile    string
	AWSEndpoint string
	AWSRegion   string
	TableName   string
}

func GetReviewSourceConfig() ReviewSourceConfig {
	return ReviewSourceConfig{
		SeedFile:    GetString("REVIEWS_SEED_FILE", ""),
		AWSEndpoint: GetString("AWS_ENDPOINT", ""),
		AWSRegion:   GetString("AWS_REGION", DEFAULT_AWS_REGION),
		TableName:   GetString("REVIEWS_TABLE_NAME", DEFAULT_REVIEWS_TABLE),
	}
}

type AnnotatorConfig struct {
	Concurrency int
	Interval    time.Duration
}

func GetAnnotatorConfig() AnnotatorConfig {
	concurrency := GetInt("ANNOTATOR_CONCURRENCY", DEFAULT_ANNOTATOR_WORKERS)
	if concurrency <= 0 {
		concurrency = DEFAULT_ANNOTATOR_WORKERS
	}
	return AnnotatorConfig{
		Concurrency: concurrency,
		Interval:    GetDuration("ANNOTATOR_INTERVAL", 0),
	}
}
