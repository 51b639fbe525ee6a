package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL         string `mapstructure:"API_BASE_URL"`
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	RequestTimeoutSecs int    `mapstructure:"REQUEST_TIMEOUT_SECS"`

	// Registration flow.
	ResendCooldownSecs int `mapstructure:"RESEND_COOLDOWN_SECS"`

	// Pricing display. Must mirror the backend's shipping formula exactly,
	// otherwise the checkout page shows a total the backend will not charge.
	FreeShippingThreshold float64 `mapstructure:"FREE_SHIPPING_THRESHOLD"`
	ShippingFlatFee       float64 `mapstructure:"SHIPPING_FLAT_FEE"`

	// Path where the auth token and user snapshot are persisted.
	SessionFile string `mapstructure:"SESSION_FILE"`
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
	viper.SetDefault("API_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REQUEST_TIMEOUT_SECS", 15)
	viper.SetDefault("RESEND_COOLDOWN_SECS", 60)
	viper.SetDefault("FREE_SHIPPING_THRESHOLD", 500)
	viper.SetDefault("SHIPPING_FLAT_FEE", 40)
	viper.SetDefault("SESSION_FILE", ".storefront/session.json")

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

// RequestTimeout returns the per-request timeout for backend calls.
func RequestTimeout() time.Duration {
	secs := AppConfig.RequestTimeoutSecs
	if secs <= 0 {
		secs = 15
	}
	return time.Duration(secs) * time.Second
}

// ResendCooldown returns the advisory resend cool-down for OTP channels.
// The backend is the actual rate-limiter; this only throttles the UI.
func ResendCooldown() int {
	if AppConfig.ResendCooldownSecs <= 0 {
		return 60
	}
	return AppConfig.ResendCooldownSecs
}
