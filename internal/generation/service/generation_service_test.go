package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

type fakeGenerator struct {
	letter  string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.letter, f.err
}

func validRequest() domain.Request {
	return domain.Request{
		Profile:        &profile.Profile{Name: "Asha Rao"},
		JobDescription: "Backend engineer at Acme",
		JobSource:      "Company site",
		Tone:           domain.ToneConfident,
	}
}

func TestGenerationService_Generate(t *testing.T) {
	ResetMetrics()
	gen := &fakeGenerator{letter: "[Your Name]\nDear Acme..."}
	svc := NewGenerationService(gen)

	letter, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "[Your Name]\nDear Acme...", letter, "raw model output is returned untouched")
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Backend engineer at Acme")
	assert.Contains(t, gen.prompts[0], "confident tone")

	m := GetMetrics()
	assert.Equal(t, int64(1), m.UpstreamCalls())
	assert.Equal(t, int64(0), m.UpstreamErrors())
}

func TestGenerationService_ValidationNeverCallsUpstream(t *testing.T) {
	ResetMetrics()
	gen := &fakeGenerator{}
	svc := NewGenerationService(gen)

	req := validRequest()
	req.JobDescription = ""
	_, err := svc.Generate(context.Background(), req)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, gen.prompts)
	assert.Equal(t, int64(1), GetMetrics().Rejected())
	assert.Equal(t, int64(0), GetMetrics().UpstreamCalls())
}

func TestGenerationService_UpstreamErrorPassesThrough(t *testing.T) {
	ResetMetrics()
	gen := &fakeGenerator{err: &domain.UpstreamError{Status: 503, Body: "overloaded"}}
	svc := NewGenerationService(gen)

	_, err := svc.Generate(context.Background(), validRequest())
	var upErr *domain.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, 503, upErr.Status)
	assert.Len(t, gen.prompts, 1)

	m := GetMetrics()
	assert.Equal(t, int64(1), m.UpstreamErrors())
	assert.Equal(t, float64(100), m.UpstreamErrorRate())
}

func TestMetrics_Empty(t *testing.T) {
	ResetMetrics()
	m := GetMetrics()
	assert.Zero(t, m.AverageUpstreamLatency())
	assert.Zero(t, m.UpstreamErrorRate())
	assert.Equal(t, Snapshot{}, m.Snapshot())
}
