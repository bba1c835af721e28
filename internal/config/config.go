package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr     string
	ServiceName  string
	SupabaseURL  string
	SupabaseKey  string
	PostgresDSN  string
	MirrorDriver string
	MirrorPath   string
	RedisAddr    string
	KafkaBrokers []string // kosong = event dimatikan
	JWTSecret    string
	SeedDefaults bool

	LowStockThreshold int
	StockwatchGroup   string
	StockwatchWorkers int
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8081"),
		ServiceName:  getenv("SERVICE_NAME", "smartpos-api"),
		SupabaseURL:  strings.TrimRight(os.Getenv("SUPABASE_URL"), "/"),
		SupabaseKey:  os.Getenv("SUPABASE_ANON_KEY"),
		PostgresDSN:  os.Getenv("POSTGRES_DSN"),
		MirrorDriver: getenv("MIRROR_DRIVER", "sqlite"),
		MirrorPath:   getenv("MIRROR_PATH", "smartpos-mirror.db"),
		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
		JWTSecret:    getenv("JWT_SECRET", "smartpos-dev-secret"),
		SeedDefaults: getbool("SEED_DEFAULTS", true),

		LowStockThreshold: getint("LOW_STOCK_THRESHOLD", 10),
		StockwatchGroup:   getenv("STOCKWATCH_GROUP", "smartpos-stockwatch"),
		StockwatchWorkers: getint("STOCKWATCH_WORKERS", 4),
	}
}

// Backend remote yang dipilih: postgres > supabase > none.
const (
	RemotePostgres = "postgres"
	RemoteSupabase = "supabase"
	RemoteNone     = "none"
)

func (c Config) Remote() string {
	switch {
	case c.PostgresDSN != "":
		return RemotePostgres
	case c.SupabaseURL != "" && c.SupabaseKey != "":
		return RemoteSupabase
	}
	return RemoteNone
}

func (c Config) EventsEnabled() bool { return len(c.KafkaBrokers) > 0 }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(os.Getenv(k)))
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func getbool(k string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(k)))
	if err != nil {
		return def
	}
	return b
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
