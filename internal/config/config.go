package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config groups the application settings, read from environment variables with
// an optional local config file. Env vars win.
type Config struct {
	Env         string
	LogLevel    string
	Addr        string
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	TokenTTL    time.Duration
	StatsTTL    time.Duration
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ADDR", ":8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TOKEN_TTL_MINUTES", 15)
	v.SetDefault("STATS_CACHE_SECONDS", 30)

	cfg := &Config{
		Env:         v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Addr:        v.GetString("ADDR"),
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		TokenTTL:    time.Duration(v.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		StatsTTL:    time.Duration(v.GetInt("STATS_CACHE_SECONDS")) * time.Second,
	}

	return cfg, nil
}
