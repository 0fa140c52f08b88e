package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Shop policy.
	Timezone           string `mapstructure:"SHOP_TIMEZONE"`
	ReminderLeadMin    int    `mapstructure:"REMINDER_LEAD_MIN"`
	AvailabilityTTLSec int    `mapstructure:"AVAILABILITY_CACHE_TTL_SECONDS"`

	// External services.
	GeminiAPIKey        string   `mapstructure:"GEMINI_API_KEY"`
	GeminiModel         string   `mapstructure:"GEMINI_MODEL"`
	FirebaseCredentials string   `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	LineChannelID       string   `mapstructure:"LINE_CHANNEL_ID"`
	LineVerifyURL       string   `mapstructure:"LINE_VERIFY_URL"`
	CloudinaryURL       string   `mapstructure:"CLOUDINARY_URL"`
	AdminEmails         []string `mapstructure:"ADMIN_EMAILS"`
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
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "barberbook")
	viper.SetDefault("SHOP_TIMEZONE", "Asia/Tokyo")
	viper.SetDefault("REMINDER_LEAD_MIN", 60)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SECONDS", 30)
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("LINE_VERIFY_URL", "https://api.line.me/oauth2/v2.1/verify")

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

// IsAdminEmail checks the fixed admin allowlist from configuration.
func IsAdminEmail(email string) bool {
	for _, e := range AppConfig.AdminEmails {
		if e == email {
			return true
		}
	}
	return false
}

// ShopLocation resolves the configured shop timezone, falling back to
// UTC if the name is invalid.
func ShopLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
