package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database — caminho do arquivo SQLite
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	BusyTimeoutMS int    `mapstructure:"DB_BUSY_TIMEOUT_MS"`

	// Redis — opcional; vazio desativa o cache do dashboard
	RedisURL string `mapstructure:"REDIS_URL"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATABASE_PATH", "faccao.db")
	viper.SetDefault("DB_BUSY_TIMEOUT_MS", 5000)
	viper.SetDefault("REDIS_URL", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
