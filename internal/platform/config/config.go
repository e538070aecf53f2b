package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config captures service-level configuration so main stays lean.
type Config struct {
	Addr     string
	LogLevel string

	// Global request rate limit for the public endpoint.
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load builds the configuration from, in increasing priority: built-in
// defaults, an optional config.yaml in the working directory, and
// ATTESTO_* environment variables (a .env file is honored when present).
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit_rps", 50.0)
	v.SetDefault("rate_limit_burst", 100)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("ATTESTO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	return Config{
		Addr:           v.GetString("addr"),
		LogLevel:       v.GetString("log_level"),
		RateLimitRPS:   v.GetFloat64("rate_limit_rps"),
		RateLimitBurst: v.GetInt("rate_limit_burst"),
	}, nil
}
