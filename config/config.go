package config

import (
	"time"

	"github.com/joho/godotenv"

	"hotel-frontdesk/utils"
)

// Config is everything the server reads from the environment.
type Config struct {
	Port        string
	Env         string
	CORSOrigins []string

	StoreDriver string // memory | sqlite | mysql
	SQLiteDSN   string

	SeedRooms        bool
	DefaultRoomPrice int
	StatusPolicy     string

	LogLevel string
	LogFile  string

	HotelName        string
	GeminiAPIKey     string
	GeminiModel      string
	GeminiEndpoint   string
	AdvisoryTimeout  time.Duration
	RedisURL         string
	AdvisoryCacheTTL time.Duration
}

// Load reads .env when present, then the process environment.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	cfg := &Config{
		Port:        utils.EnvOrDefault("PORT", "8080"),
		Env:         utils.EnvOrDefault("ENV", "development"),
		CORSOrigins: utils.SplitList(utils.EnvOrDefault("CORS_ORIGINS", "*")),

		StoreDriver: utils.EnvOrDefault("STORE_DRIVER", "memory"),
		SQLiteDSN:   utils.EnvOrDefault("SQLITE_DSN", "file:frontdesk?mode=memory&cache=shared"),

		SeedRooms:        utils.EnvBool("SEED_ROOMS", true),
		DefaultRoomPrice: utils.EnvInt("DEFAULT_ROOM_PRICE", 1280),
		StatusPolicy:     utils.EnvOrDefault("STATUS_POLICY", "open"),

		LogLevel: utils.EnvOrDefault("LOG_LEVEL", "info"),
		LogFile:  utils.EnvOrDefault("LOG_FILE", ""),

		HotelName:        utils.EnvOrDefault("HOTEL_NAME", "HotelPro"),
		GeminiAPIKey:     utils.EnvOrDefault("GEMINI_API_KEY", utils.EnvOrDefault("API_KEY", "")),
		GeminiModel:      utils.EnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiEndpoint:   utils.EnvOrDefault("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta"),
		AdvisoryTimeout:  utils.EnvDuration("ADVISORY_TIMEOUT", 30*time.Second),
		RedisURL:         utils.EnvOrDefault("REDIS_URL", ""),
		AdvisoryCacheTTL: utils.EnvDuration("ADVISORY_CACHE_TTL", 2*time.Minute),
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	return cfg, envLoaded
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
