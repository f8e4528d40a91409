package config

import (
	"time"

	"ideaboard/utils"
)

type DatabaseConfig struct {
	URI                string        `yaml:"uri"`
	MaxPoolSize        uint64        `yaml:"max_pool_size"`
	MinPoolSize        uint64        `yaml:"min_pool_size"`
	MaxConnIdleTime    time.Duration `yaml:"max_conn_idle_time"`
	DatabaseName       string        `yaml:"database"`
	RetryWrites        bool          `yaml:"retry_writes"`
	BoardsCollection   string        `yaml:"boards_collection"`
	IdeasCollection    string        `yaml:"ideas_collection"`
	UsersCollection    string        `yaml:"users_collection"`
	SessionsCollection string        `yaml:"sessions_collection"`
}

func defaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:                "mongodb://localhost:27017",
		MaxPoolSize:        100,
		MinPoolSize:        10,
		MaxConnIdleTime:    60 * time.Second,
		DatabaseName:       "ideaboard",
		RetryWrites:        true,
		BoardsCollection:   "boards",
		IdeasCollection:    "ideas",
		UsersCollection:    "users",
		SessionsCollection: "sessions",
	}
}

func (d DatabaseConfig) withEnv() DatabaseConfig {
	return DatabaseConfig{
		URI:                utils.GetEnvAsString("MONGO_URI", d.URI),
		MaxPoolSize:        utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", d.MaxPoolSize),
		MinPoolSize:        utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", d.MinPoolSize),
		MaxConnIdleTime:    utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", d.MaxConnIdleTime),
		DatabaseName:       utils.GetEnvAsString("MONGO_DB", d.DatabaseName),
		RetryWrites:        utils.GetEnvAsBool("MONGO_RETRY_WRITES", d.RetryWrites),
		BoardsCollection:   utils.GetEnvAsString("BOARDS_COLLECTION", d.BoardsCollection),
		IdeasCollection:    utils.GetEnvAsString("IDEAS_COLLECTION", d.IdeasCollection),
		UsersCollection:    utils.GetEnvAsString("USERS_COLLECTION", d.UsersCollection),
		SessionsCollection: utils.GetEnvAsString("SESSIONS_COLLECTION", d.SessionsCollection),
	}
}

// LoadDatabaseConfig reads the Mongo settings from the environment only.
func LoadDatabaseConfig() DatabaseConfig {
	return defaultDatabaseConfig().withEnv()
}
