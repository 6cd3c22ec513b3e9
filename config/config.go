package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sniperlink/utils"
)

var (
	AppConfig Config
	envLoaded bool
)

const productionHost = "https://sniperl.ink"

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address" validate:"required_if=Enabled true"`
	Password string `json:"-"`
	DB       int    `json:"db" validate:"min=0"`
}

type DNSConfig struct {
	Mode        string        `json:"mode" validate:"oneof=doh udp"`
	DoHEndpoint string        `json:"doh_endpoint" validate:"required_if=Mode doh"`
	Server      string        `json:"server" validate:"required_if=Mode udp"`
	Timeout     time.Duration `json:"timeout"`
}

type RateLimitConfig struct {
	Max    int           `json:"max" validate:"min=0"` // 0 disables the limiter
	Window time.Duration `json:"window"`
}

type Config struct {
	Environment              string          `json:"environment"`
	ServerPort               string          `json:"server_port" validate:"required"`
	PublicHost               string          `json:"public_host"`
	LogLevel                 string          `json:"log_level"`
	SentryDSN                string          `json:"-"`
	DNS                      DNSConfig       `json:"dns"`
	AndroidPlayStoreFallback bool            `json:"android_play_store_fallback"`
	AllowedOrigins           []string        `json:"allowed_origins"`
	RateLimit                RateLimitConfig `json:"rate_limit"`
	Redis                    RedisConfig     `json:"redis"`
	LogoDir                  string          `json:"logo_dir"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	AppConfig = cfg
	logConfig()
	return nil
}

// Load reads the configuration from the environment without touching AppConfig
func Load() (Config, error) {
	environment := getEnv("ENVIRONMENT", "development")

	publicHost := ""
	if environment == "production" {
		publicHost = productionHost
	}

	cfg := Config{
		Environment: environment,
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		PublicHost:  strings.TrimSuffix(getEnv("PUBLIC_HOST", publicHost), "/"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		DNS: DNSConfig{
			Mode:        strings.ToLower(getEnv("DNS_MODE", "doh")),
			DoHEndpoint: getEnv("DNS_DOH_ENDPOINT", "https://cloudflare-dns.com/dns-query"),
			Server:      getEnv("DNS_SERVER", "1.1.1.1:53"),
			Timeout:     getEnvAsDuration("DNS_TIMEOUT", 0),
		},
		AndroidPlayStoreFallback: getEnvAsBool("ANDROID_PLAY_STORE_FALLBACK", false),
		AllowedOrigins:           getEnvAsList("CORS_ALLOWED_ORIGINS"),
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 0),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		LogoDir: getEnv("LOGO_DIR", ""),
	}

	if err := utils.ValidateStruct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		logrus.Warnf("⚠️ Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsList(key string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func logConfig() {
	logrus.Info("🔧 Loaded configuration:")
	logrus.Infof("Environment: %s", AppConfig.Environment)
	logrus.Infof("Server Port: %s", AppConfig.ServerPort)
	logrus.Infof("Public Host: %q", AppConfig.PublicHost)
	switch AppConfig.DNS.Mode {
	case "udp":
		logrus.Infof("DNS: udp via %s", AppConfig.DNS.Server)
	default:
		logrus.Infof("DNS: doh via %s", AppConfig.DNS.DoHEndpoint)
	}
	logrus.Infof("Rate limit: %d per %s (redis %t)",
		AppConfig.RateLimit.Max,
		AppConfig.RateLimit.Window,
		AppConfig.Redis.Enabled)
	logrus.Infof("Sentry: %t, Play Store fallback: %t",
		AppConfig.SentryDSN != "",
		AppConfig.AndroidPlayStoreFallback)
}
