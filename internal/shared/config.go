package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	BackendURL  string
	GraphQLURL  string
	Transport   string // "rest" or "graphql"
	TokenPath   string
	DraftsDB    string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	CacheTTL    time.Duration
	MetricsAddr string
	RateRPS     int
}

// Load reads .env (when present) and then the environment.
func Load() Config {
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:      env("APP_ENV", "prod"),
		BackendURL:  env("BACKEND_URL", "http://localhost:8080/api"),
		GraphQLURL:  env("GRAPHQL_URL", "http://localhost:8080/graphql"),
		Transport:   env("TRANSPORT", "rest"),
		TokenPath:   env("TOKEN_PATH", defaultHome("token.json")),
		DraftsDB:    env("DRAFTS_DB", defaultHome("drafts.db")),
		RedisAddr:   env("REDIS_ADDR", ""),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		MetricsAddr: env("METRICS_ADDR", ""),
		RateRPS:     atoi("RATE_RPS", 10),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultHome(file string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return file
	}
	return filepath.Join(home, ".travelbook", file)
}
