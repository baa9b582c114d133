package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

func TestRequest_Validate(t *testing.T) {
	p := &profile.Profile{Name: "Asha"}

	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"complete", Request{Profile: p, JobDescription: "Backend engineer"}, false},
		{"empty profile object still counts", Request{Profile: &profile.Profile{}, JobDescription: "JD"}, false},
		{"missing profile", Request{JobDescription: "JD"}, true},
		{"missing job description", Request{Profile: p}, true},
		{"whitespace job description is present", Request{Profile: p, JobDescription: " \n\t"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, MissingInputMessage, err.Error())
		})
	}
}

func TestRequest_EffectiveTone(t *testing.T) {
	assert.Equal(t, ToneProfessional, Request{}.EffectiveTone())
	assert.Equal(t, ToneHumble, Request{Tone: " humble "}.EffectiveTone())
	assert.Equal(t, Tone("witty"), Request{Tone: "witty"}.EffectiveTone())
}

func TestUpstreamError(t *testing.T) {
	err := &UpstreamError{Status: 429, Body: `{"error":"quota"}`}
	assert.Equal(t, `Gemini API error: {"error":"quota"}`, err.Error())
}
