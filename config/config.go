package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AuthModeFirebase = "firebase"
	AuthModeDev      = "dev"

	StoreFirestore = "firestore"
	StoreRedis     = "redis"
	StorePostgres  = "postgres"
	StoreMemory    = "memory"

	TransportHTTP = "http"
	TransportSDK  = "sdk"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Auth      AuthConfig
	Firebase  FirebaseConfig
	Gemini    GeminiConfig
	Store     StoreConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
}

type AuthConfig struct {
	Mode string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
}

type GeminiConfig struct {
	APIKey    string
	Model     string
	BaseURL   string
	Transport string
	Timeout   time.Duration // 0 means no client timeout
}

type StoreConfig struct {
	Backend string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	URL      string
	Driver   string // "postgres" (lib/pq) or "pgx"
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RateLimitConfig struct {
	GeneratePerMinute int
	GenerateBurst     int
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ServiceName: getEnv("SERVICE_NAME", "coverletter-api"),
		},
		Auth: AuthConfig{
			Mode: getEnv("AUTH_MODE", AuthModeFirebase),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		},
		Gemini: GeminiConfig{
			APIKey:    getEnv("GEMINI_API_KEY", ""),
			Model:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			BaseURL:   strings.TrimRight(getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"), "/"),
			Transport: getEnv("GEMINI_TRANSPORT", TransportHTTP),
			Timeout:   getEnvAsDuration("GEMINI_TIMEOUT", 0),
		},
		Store: StoreConfig{
			Backend: getEnv("PROFILE_STORE", StoreFirestore),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Driver:   getEnv("DB_DRIVER", "postgres"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "coverletter"),
		},
		RateLimit: RateLimitConfig{
			GeneratePerMinute: getEnvAsInt("GENERATE_RATE_PER_MIN", 6),
			GenerateBurst:     getEnvAsInt("GENERATE_BURST", 3),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Server.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin")
	}

	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	switch c.Gemini.Transport {
	case TransportHTTP, TransportSDK:
	default:
		return fmt.Errorf("GEMINI_TRANSPORT must be %q or %q, got %q", TransportHTTP, TransportSDK, c.Gemini.Transport)
	}

	switch c.Auth.Mode {
	case AuthModeFirebase:
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when AUTH_MODE=firebase")
		}
	case AuthModeDev:
		if c.IsProduction() {
			return fmt.Errorf("AUTH_MODE=dev is not allowed when APP_ENV=production")
		}
	default:
		return fmt.Errorf("AUTH_MODE must be %q or %q, got %q", AuthModeFirebase, AuthModeDev, c.Auth.Mode)
	}

	switch c.Store.Backend {
	case StoreFirestore:
		if c.Firebase.CredentialsPath == "" {
			return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required when PROFILE_STORE=firestore")
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when PROFILE_STORE=redis")
		}
	case StorePostgres:
		if c.Database.URL == "" && c.Database.Host == "" {
			return fmt.Errorf("DATABASE_URL or DB_HOST is required when PROFILE_STORE=postgres")
		}
		if c.Database.Driver != "postgres" && c.Database.Driver != "pgx" {
			return fmt.Errorf("DB_DRIVER must be \"postgres\" or \"pgx\", got %q", c.Database.Driver)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown PROFILE_STORE %q", c.Store.Backend)
	}

	if c.RateLimit.GeneratePerMinute <= 0 || c.RateLimit.GenerateBurst <= 0 {
		return fmt.Errorf("GENERATE_RATE_PER_MIN and GENERATE_BURST must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
