package config

import (
	"time"

	"main/utils"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
	RetryWrites     bool
}

// LoadDatabaseConfig reads the store settings from the environment. URI has
// no default on purpose: startup fails loudly without it.
func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGODB_URI", ""),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "challenges"),
		RetryWrites:     utils.GetEnvAsBool("MONGO_RETRY_WRITES", true),
	}
}
