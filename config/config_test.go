package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"GEMINI_API_KEY": "key",
		"AUTH_MODE":      AuthModeDev,
		"PROFILE_STORE":  StoreMemory,
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Gemini.BaseURL)
	assert.Equal(t, TransportHTTP, cfg.Gemini.Transport)
	assert.Zero(t, cfg.Gemini.Timeout)
	assert.Equal(t, 6, cfg.RateLimit.GeneratePerMinute)
	assert.Equal(t, 3, cfg.RateLimit.GenerateBurst)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"GEMINI_API_KEY":     "key",
		"AUTH_MODE":          AuthModeDev,
		"PROFILE_STORE":      StoreRedis,
		"REDIS_ADDR":         "redis:6379",
		"REDIS_DB":           "2",
		"GEMINI_TIMEOUT":     "45s",
		"GEMINI_BASE_URL":    "http://localhost:9999/v1beta/",
		"CORS_ALLOW_ORIGINS": "https://a.example, https://b.example",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 45*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, "http://localhost:9999/v1beta", cfg.Gemini.BaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
}

func TestLoad_RejectsEmptyCORSList(t *testing.T) {
	setEnv(t, map[string]string{
		"GEMINI_API_KEY":     "key",
		"AUTH_MODE":          AuthModeDev,
		"PROFILE_STORE":      StoreMemory,
		"CORS_ALLOW_ORIGINS": " , ,",
	})

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_ALLOW_ORIGINS")
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", CORSOrigins: []string{"http://localhost:3000"}},
		App:       AppConfig{Environment: "development"},
		Auth:      AuthConfig{Mode: AuthModeFirebase},
		Firebase:  FirebaseConfig{CredentialsPath: "/secrets/sa.json"},
		Gemini:    GeminiConfig{APIKey: "key", Transport: TransportHTTP},
		Store:     StoreConfig{Backend: StoreFirestore},
		Database:  DatabaseConfig{Driver: "postgres"},
		RateLimit: RateLimitConfig{GeneratePerMinute: 6, GenerateBurst: 3},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no cors origins", func(c *Config) { c.Server.CORSOrigins = nil }, "CORS_ALLOW_ORIGINS"},
		{"missing api key", func(c *Config) { c.Gemini.APIKey = "" }, "GEMINI_API_KEY"},
		{"bad transport", func(c *Config) { c.Gemini.Transport = "grpc" }, "GEMINI_TRANSPORT"},
		{"firebase without credentials", func(c *Config) { c.Firebase.CredentialsPath = "" }, "FIREBASE_CREDENTIALS_PATH"},
		{"dev auth in production", func(c *Config) {
			c.Auth.Mode = AuthModeDev
			c.App.Environment = "production"
		}, "AUTH_MODE=dev"},
		{"unknown store", func(c *Config) { c.Store.Backend = "s3" }, "PROFILE_STORE"},
		{"postgres without database", func(c *Config) {
			c.Store.Backend = StorePostgres
			c.Database.URL = ""
			c.Database.Host = ""
		}, "DATABASE_URL"},
		{"bad db driver", func(c *Config) {
			c.Store.Backend = StorePostgres
			c.Database.URL = "postgres://localhost/db"
			c.Database.Driver = "mysql"
		}, "DB_DRIVER"},
		{"zero rate", func(c *Config) { c.RateLimit.GeneratePerMinute = 0 }, "GENERATE_RATE_PER_MIN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
