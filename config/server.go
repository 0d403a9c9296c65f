package config

import (
	"strings"
	"time"

	"main/utils"
)

// defaultAllowedOrigins is the deployment's CORS allow-list: the hosted
// frontend plus the local Vite dev server.
var defaultAllowedOrigins = []string{
	"https://100dayschallenges.vercel.app",
	"http://localhost:5173",
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	RateLimitMax    int
	RateLimitWindow time.Duration
	MaxBodyBytes    int64
	RedisURL        string
}

// LoadServerConfig reads the HTTP settings from the environment.
func LoadServerConfig() ServerConfig {
	origins := defaultAllowedOrigins
	if raw := utils.GetEnvAsString("CORS_ALLOWED_ORIGINS", ""); raw != "" {
		origins = nil
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return ServerConfig{
		Port:            utils.GetEnvAsString("PORT", "3001"),
		AllowedOrigins:  origins,
		RateLimitMax:    utils.GetEnvAsInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: utils.GetEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		MaxBodyBytes:    utils.GetEnvAsInt64("MAX_BODY_BYTES", 10<<20),
		RedisURL:        utils.GetEnvAsString("REDIS_URL", ""),
	}
}
