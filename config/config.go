package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Storage.
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`
	SeedDoctors   bool   `mapstructure:"SEED_DOCTORS"`

	// Redis configuration.
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RedisPassword  string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB   int           `mapstructure:"REDIS_QUEUE_DB"`
	CacheEnabled   bool          `mapstructure:"CACHE_ENABLED"`
	DoctorCacheTTL time.Duration `mapstructure:"DOCTOR_CACHE_TTL"`

	// Reminders.
	RemindersEnabled bool          `mapstructure:"REMINDERS_ENABLED"`
	ReminderLead     time.Duration `mapstructure:"REMINDER_LEAD"`

	// Caller identity issued by the upstream auth provider.
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	AuthRequired bool   `mapstructure:"AUTH_REQUIRED"`

	// Scheduling rules.
	Timezone            string  `mapstructure:"TIMEZONE"`
	SlotStartHour       int     `mapstructure:"SLOT_START_HOUR"`
	SlotEndHour         int     `mapstructure:"SLOT_END_HOUR"`
	SlotIntervalMinutes int     `mapstructure:"SLOT_INTERVAL_MINUTES"`
	VideoDiscount       float64 `mapstructure:"VIDEO_DISCOUNT"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("STORAGE_DRIVER", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "medibook")
	viper.SetDefault("SEED_DOCTORS", true)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("CACHE_ENABLED", true)
	viper.SetDefault("DOCTOR_CACHE_TTL", "10m")
	viper.SetDefault("REMINDERS_ENABLED", true)
	viper.SetDefault("REMINDER_LEAD", "1h")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("AUTH_REQUIRED", false)
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("SLOT_START_HOUR", 9)
	viper.SetDefault("SLOT_END_HOUR", 18)
	viper.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	viper.SetDefault("VIDEO_DISCOUNT", 100)
}

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

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

// Location resolves TIMEZONE. Calendar dates and "today" are evaluated in it.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("unknown TIMEZONE %q, falling back to local time", c.Timezone)
		return time.Local
	}
	return loc
}
