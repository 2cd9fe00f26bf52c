package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	AppName    = "PromptCraft"
	AppVersion = "1.0.0"
)

const (
	defaultAddr          = ":3001"
	defaultDataDir       = "./data"
	defaultTokenTTL      = 24 * time.Hour
	defaultAIQPS         = 10
	defaultAITimeout     = 60 * time.Second
	defaultPurgeInterval = time.Hour
)

type AIConfig struct {
	Provider string // openai, anthropic, compatible; empty disables suggestions
	APIKey   string
	BaseURL  string
	Model    string
	QPS      int
	// Proxy is an optional http(s):// or socks5:// URL for provider calls.
	Proxy   string
	Timeout time.Duration
}

// Enabled reports whether enough is configured to build a provider.
func (c AIConfig) Enabled() bool {
	return c.Provider != "" && c.APIKey != ""
}

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	StaticDir string
	LogLevel  string
	SecretKey string
	NodeID    int64
	TokenTTL  time.Duration
	AI        AIConfig

	// TrashRetention is how long a prompt stays in Trash before the purge job
	// removes it. Zero disables purging.
	TrashRetention time.Duration
	PurgeInterval  time.Duration
}

func Load() Config {
	dataDir := envOr("PROMPTCRAFT_DATA_DIR", defaultDataDir)
	path := os.Getenv("PROMPTCRAFT_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "promptcraft.db")
	}
	staticDir := os.Getenv("PROMPTCRAFT_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:      envOr("PROMPTCRAFT_ADDR", defaultAddr),
		DBPath:    filepath.Clean(path),
		DataDir:   filepath.Clean(dataDir),
		StaticDir: filepath.Clean(staticDir),
		LogLevel:  envOr("PROMPTCRAFT_LOG_LEVEL", "info"),
		SecretKey: os.Getenv("PROMPTCRAFT_SECRET_KEY"),
		NodeID:    envInt64("PROMPTCRAFT_NODE_ID", 1),
		TokenTTL:  envDuration("PROMPTCRAFT_TOKEN_TTL", defaultTokenTTL),
		AI: AIConfig{
			Provider: strings.ToLower(os.Getenv("PROMPTCRAFT_AI_PROVIDER")),
			APIKey:   os.Getenv("PROMPTCRAFT_AI_API_KEY"),
			BaseURL:  os.Getenv("PROMPTCRAFT_AI_BASE_URL"),
			Model:    os.Getenv("PROMPTCRAFT_AI_MODEL"),
			QPS:      int(envInt64("PROMPTCRAFT_AI_QPS", defaultAIQPS)),
			Proxy:    os.Getenv("PROMPTCRAFT_AI_PROXY"),
			Timeout:  envDuration("PROMPTCRAFT_AI_TIMEOUT", defaultAITimeout),
		},
		TrashRetention: envDuration("PROMPTCRAFT_TRASH_RETENTION", 0),
		PurgeInterval:  envDuration("PROMPTCRAFT_PURGE_INTERVAL", defaultPurgeInterval),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// envDuration accepts Go duration strings ("36h") and bare day counts ("30d").
func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return fallback
		}
		return time.Duration(n) * 24 * time.Hour
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}

func detectStaticDir() string {
	candidates := []string{
		"./public",
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./public"
}
