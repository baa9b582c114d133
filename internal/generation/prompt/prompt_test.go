package prompt

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

func TestBuild(t *testing.T) {
	req := domain.Request{
		Profile:        &profile.Profile{Name: "Asha Rao", Location: "Pune", Skills: []string{"Go", "R&D"}},
		JobDescription: "Build payment APIs <fast>.",
		JobSource:      "LinkedIn",
		Tone:           domain.ToneEnthusiastic,
	}

	got, err := Build(req)
	require.NoError(t, err)

	assert.Contains(t, got, "Maintain a **enthusiastic tone while also being friendly and professional**")
	assert.Contains(t, got, "under 250 words")
	assert.Contains(t, got, "Do not include greetings like “Hi there” or “Dear Hiring Manager.”")
	assert.Contains(t, got, "Output only the final letter.")
	assert.Contains(t, got, "💼 Job Description:\nBuild payment APIs <fast>.\n")
	assert.Contains(t, got, "🔎 Job Source:\nLinkedIn\n---")
	assert.Contains(t, got, "📄 Applicant Profile:\n{\n  \"name\": \"Asha Rao\",")
	assert.Contains(t, got, `"R&D"`)
}

func TestBuild_DefaultTone(t *testing.T) {
	got, err := Build(domain.Request{Profile: &profile.Profile{}, JobDescription: "JD"})
	require.NoError(t, err)
	assert.Contains(t, got, "Maintain a **professional tone")
}

func TestBuild_HeaderInstructionComesFirst(t *testing.T) {
	got, err := Build(domain.Request{Profile: &profile.Profile{}, JobDescription: "JD"})
	require.NoError(t, err)
	header := strings.Index(got, "1. Start with the applicant’s name, location, phone number, and email")
	body := strings.Index(got, "Applicant Profile:")
	assert.True(t, header >= 0 && header < body)
}

func TestBuild_RejectsMissingInput(t *testing.T) {
	_, err := Build(domain.Request{JobDescription: "JD"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.MissingInputMessage, verr.Message)

	_, err = Build(domain.Request{Profile: &profile.Profile{Name: "A"}})
	assert.True(t, errors.As(err, &verr))
}

func TestProfileJSON_Indented(t *testing.T) {
	got, err := ProfileJSON(&profile.Profile{Links: profile.Links{GitHub: "gh"}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "{\n  \"name\": \"\""))
	assert.Contains(t, got, "\"links\": {\n    \"github\": \"gh\",")
	assert.False(t, strings.HasSuffix(got, "\n"))
}
