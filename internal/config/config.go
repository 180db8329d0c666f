package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds everything the process reads from its environment. Every key
// has a default so the app boots with no environment at all.
type Config struct {
	AppPort       string `validate:"required"`
	DBHost        string `validate:"required"`
	DBPort        int    `validate:"gt=0,lte=65535"`
	DBUser        string `validate:"required"`
	DBPassword    string
	DBName        string `validate:"required"`
	SessionSecret string `validate:"required"`
	RabbitMQURL   string // empty disables event publishing
}

// Load reads configuration from environment variables via Viper, applying
// the documented default fallbacks, and validates the result.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "ecsite")
	viper.SetDefault("DB_PASSWORD", "ecsite")
	viper.SetDefault("DB_NAME", "ecsite")
	viper.SetDefault("SESSION_SECRET", "ecsite_session_secret")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:       viper.GetString("APP_PORT"),
		DBHost:        viper.GetString("DB_HOST"),
		DBPort:        viper.GetInt("DB_PORT"),
		DBUser:        viper.GetString("DB_USER"),
		DBPassword:    viper.GetString("DB_PASSWORD"),
		DBName:        viper.GetString("DB_NAME"),
		SessionSecret: viper.GetString("SESSION_SECRET"),
		RabbitMQURL:   viper.GetString("RABBITMQ_URL"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DSN builds the database connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
