package service

import (
	"context"
	"errors"
	"time"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	"github.com/AwwwRyan/coverletter-gen/internal/generation/prompt"
	"github.com/AwwwRyan/coverletter-gen/internal/logging"
)

// Generator turns a prompt into model text. gemini.Client and
// gemini.SDKClient both satisfy it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type GenerationService struct {
	generator Generator
}

func NewGenerationService(g Generator) *GenerationService {
	return &GenerationService{generator: g}
}

// Generate validates the request, builds the prompt and makes exactly one
// upstream call. The returned letter is unprocessed model output.
func (s *GenerationService) Generate(ctx context.Context, req domain.Request) (string, error) {
	logger := logging.FromContext(ctx)

	text, err := prompt.Build(req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			recordRejected()
		}
		return "", err
	}

	start := time.Now()
	letter, err := s.generator.Generate(ctx, text)
	duration := time.Since(start)
	recordUpstreamCall(duration, err)

	if err != nil {
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) {
			logger.LogWarnf("generate", "upstream returned status %d: %s", upErr.Status, upErr.Body)
		} else {
			logger.LogError("generate", err)
		}
		return "", err
	}

	logger.LogInfof("generate", "letter generated tone=%s chars=%d duration=%s", req.EffectiveTone(), len(letter), duration)
	return letter, nil
}
