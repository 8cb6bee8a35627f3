package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Debug bool
}

// APIConfig describes the remote backend the client talks to, plus the
// listen port used when running the bundled development backend.
type APIConfig struct {
	BaseURL    string
	MockPort   string
	DefaultTVA float64
}

// SessionConfig locates the persisted identity record.
type SessionConfig struct {
	File string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "maktabati-pos")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("API_BASE_URL", "http://localhost:7189")
	viper.SetDefault("API_MOCK_PORT", "7189")
	viper.SetDefault("DEFAULT_TVA", 20.0)
	viper.SetDefault("SESSION_FILE", "./storage/session.json")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		API: APIConfig{
			BaseURL:    viper.GetString("API_BASE_URL"),
			MockPort:   viper.GetString("API_MOCK_PORT"),
			DefaultTVA: viper.GetFloat64("DEFAULT_TVA"),
		},
		Session: SessionConfig{
			File: viper.GetString("SESSION_FILE"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
