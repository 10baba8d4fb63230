package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort string `mapstructure:"APP_PORT"`
	Env     string `mapstructure:"ENV"`

	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini credentials for the conversational model.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Booking.com RapidAPI credentials for hotel and flight lookups.
	RapidAPIHost string `mapstructure:"RAPIDAPI_HOST"`
	RapidAPIKey  string `mapstructure:"RAPIDAPI_KEY"`

	// ExtractionMode selects how slot values are pulled out of a turn:
	// "block" reads the structured block the model appends to its reply,
	// "heuristic" scans the user's message with keyword tables.
	ExtractionMode string `mapstructure:"EXTRACTION_MODE"`
	// CollectOrigin controls whether the stage ordering starts by asking
	// for the traveler's origin city.
	CollectOrigin bool `mapstructure:"COLLECT_ORIGIN"`

	// ProviderTimeoutSec bounds each travel-provider HTTP call.
	ProviderTimeoutSec int `mapstructure:"PROVIDER_TIMEOUT_SEC"`
	// ModelTimeoutSec bounds each Gemini call.
	ModelTimeoutSec int `mapstructure:"MODEL_TIMEOUT_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("RAPIDAPI_HOST", "booking-com15.p.rapidapi.com")
	viper.SetDefault("RAPIDAPI_KEY", "")
	viper.SetDefault("EXTRACTION_MODE", "block")
	viper.SetDefault("COLLECT_ORIGIN", true)
	viper.SetDefault("PROVIDER_TIMEOUT_SEC", 15)
	viper.SetDefault("MODEL_TIMEOUT_SEC", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
