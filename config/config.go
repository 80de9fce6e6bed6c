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
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSyncQueue int    `mapstructure:"REDIS_SYNC_QUEUE_DB"`

	// Business time zone all slot arithmetic is anchored to.
	BusinessTimezone string `mapstructure:"BUSINESS_TIMEZONE"`

	// Slot generation.
	SlotStepMinutes int `mapstructure:"SLOT_STEP_MINUTES"`

	// Google Calendar (busy intervals + booking events).
	CalendarID            string `mapstructure:"CALENDAR_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	// The events API misbehaves on long spans; queries are chunked to this width.
	CalendarQueryWindowDays int `mapstructure:"CALENDAR_QUERY_WINDOW_DAYS"`

	// Google Sheet holding the weekly schedule and date exceptions.
	ScheduleSheetID     string `mapstructure:"SCHEDULE_SHEET_ID"`
	ScheduleCacheTTLSec int    `mapstructure:"SCHEDULE_CACHE_TTL_SEC"`
	ScheduleSyncMinutes int    `mapstructure:"SCHEDULE_SYNC_MINUTES"`
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
	viper.SetDefault("REDIS_SYNC_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("BUSINESS_TIMEZONE", "Europe/Kyiv")
	viper.SetDefault("SLOT_STEP_MINUTES", 15)
	viper.SetDefault("CALENDAR_ID", "primary")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("CALENDAR_QUERY_WINDOW_DAYS", 30)
	viper.SetDefault("SCHEDULE_SHEET_ID", "")
	viper.SetDefault("SCHEDULE_CACHE_TTL_SEC", 300)
	viper.SetDefault("SCHEDULE_SYNC_MINUTES", 10)

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

// ScheduleCacheTTL returns the schedule cache TTL as a duration.
func ScheduleCacheTTL() time.Duration {
	return time.Duration(AppConfig.ScheduleCacheTTLSec) * time.Second
}

// BusinessLocation loads the configured operating time zone. Slot boundaries must
// not depend on wherever the server happens to run.
func BusinessLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.BusinessTimezone)
	if err != nil {
		log.Fatalf("Invalid BUSINESS_TIMEZONE %q: %v", AppConfig.BusinessTimezone, err)
	}
	return loc
}
