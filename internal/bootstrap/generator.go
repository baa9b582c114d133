package bootstrap

import (
	"context"
	"net/http"

	"github.com/AwwwRyan/coverletter-gen/config"
	"github.com/AwwwRyan/coverletter-gen/internal/generation/gemini"
	"github.com/AwwwRyan/coverletter-gen/internal/generation/service"
)

// BuildGenerator returns the Gemini provider selected by GEMINI_TRANSPORT.
func BuildGenerator(ctx context.Context, cfg *config.GeminiConfig) (service.Generator, error) {
	if cfg.Transport == config.TransportSDK {
		return gemini.NewSDKClient(ctx, gemini.SDKConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
	}
	return gemini.NewClient(gemini.Config{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}), nil
}
