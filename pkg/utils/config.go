package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Queue     QueueConfig
	Support   SupportConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

// StorageConfig selects the snapshot backend the store mirrors into.
type StorageConfig struct {
	Driver     string // memory, sqlite, mysql, postgres, redis
	SQLitePath string
	MySQLDSN   string
	Postgres   PostgresConfig
	Redis      RedisConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// QueueConfig enables the RabbitMQ booking event pipeline when AMQPURL is set.
type QueueConfig struct {
	AMQPURL string
}

type SupportConfig struct {
	ReplyDelay time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-theater")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("STORAGE_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "movie-theater.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 4)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "movie-theater")
	v.SetDefault("SUPPORT_REPLY_DELAY", "1s")
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 5)

	// .env is optional, environment variables alone are enough
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Storage: StorageConfig{
			Driver:     v.GetString("STORAGE_DRIVER"),
			SQLitePath: v.GetString("SQLITE_PATH"),
			MySQLDSN:   v.GetString("MYSQL_DSN"),
			Postgres: PostgresConfig{
				Host:     v.GetString("DB_HOST"),
				Port:     v.GetString("DB_PORT"),
				Name:     v.GetString("DB_NAME"),
				User:     v.GetString("DB_USER"),
				Password: v.GetString("DB_PASS"),
				MaxConns: v.GetInt32("DB_MAX_CONNS"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
				Prefix:   v.GetString("REDIS_PREFIX"),
			},
		},
		Queue: QueueConfig{
			AMQPURL: v.GetString("AMQP_URL"),
		},
		Support: SupportConfig{
			ReplyDelay: v.GetDuration("SUPPORT_REPLY_DELAY"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}
