package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration. Values are read by viper from the
// environment (godotenv loads .env into it first, see cmd/linkloom).
type Config struct {
	Port           string `mapstructure:"PORT"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	Domain         string `mapstructure:"DOMAIN"`
	ClientURL      string `mapstructure:"CLIENT_URL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
}

func Load() (Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "3000")

	// AutomaticEnv alone does not surface env vars to Unmarshal, so each key
	// is bound explicitly.
	keys := []string{
		"PORT", "DATABASE_URL", "JWT_SECRET", "DOMAIN", "CLIENT_URL", "ALLOWED_ORIGINS",
		"GEMINI_API_KEY",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET",
	}

	for _, key := range keys {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, err
		}
	}

	var config Config

	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}

	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}

	return config, nil
}
