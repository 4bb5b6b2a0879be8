package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	JWT    JWTConfig
	HRAPI  HRAPIConfig
	Cache  CacheConfig
	Search SearchConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds the inbound API token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// HRAPIConfig holds the remote HR record source configuration. The default
// password and MAC address are the machine credentials used when logging in
// on behalf of an employee.
type HRAPIConfig struct {
	BaseURL         string
	Timeout         time.Duration
	JWTSecret       string
	DefaultPassword string
	MACAddress      string
}

// CacheConfig selects the cache backend. An empty RedisAddr keeps the
// in-memory store.
type CacheConfig struct {
	RedisAddr     string
	TokenTTL      time.Duration
	ProfileTTL    time.Duration
	TeamTTL       time.Duration
	AttendanceTTL time.Duration
}

// SearchConfig holds the optional MongoDB directory mirror. An empty URI
// disables the search service.
type SearchConfig struct {
	MongoURI   string
	Database   string
	Collection string
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	hrTimeout, err := time.ParseDuration(getEnv("HR_API_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HR_API_TIMEOUT: %w", err)
	}

	config.HRAPI = HRAPIConfig{
		BaseURL:         getEnv("HR_API_BASE_URL", ""),
		Timeout:         hrTimeout,
		JWTSecret:       getEnv("HR_API_JWT_SECRET", ""),
		DefaultPassword: getEnv("HR_API_DEFAULT_PASSWORD", ""),
		MACAddress:      getEnv("HR_API_MAC_ADDRESS", ""),
	}

	tokenTTL, err := time.ParseDuration(getEnv("CACHE_TOKEN_TTL", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TOKEN_TTL: %w", err)
	}
	profileTTL, err := time.ParseDuration(getEnv("CACHE_PROFILE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_PROFILE_TTL: %w", err)
	}
	teamTTL, err := time.ParseDuration(getEnv("CACHE_TEAM_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TEAM_TTL: %w", err)
	}
	attendanceTTL, err := time.ParseDuration(getEnv("CACHE_ATTENDANCE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_ATTENDANCE_TTL: %w", err)
	}

	config.Cache = CacheConfig{
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		TokenTTL:      tokenTTL,
		ProfileTTL:    profileTTL,
		TeamTTL:       teamTTL,
		AttendanceTTL: attendanceTTL,
	}

	config.Search = SearchConfig{
		MongoURI:   getEnv("MONGODB_URI", ""),
		Database:   getEnv("MONGODB_DATABASE", "nas_hr"),
		Collection: getEnv("MONGODB_COLLECTION", "employees"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.HRAPI.BaseURL == "" {
		return fmt.Errorf("HR_API_BASE_URL is required")
	}
	if c.HRAPI.DefaultPassword == "" {
		return fmt.Errorf("HR_API_DEFAULT_PASSWORD is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
