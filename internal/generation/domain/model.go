package domain

import (
	"strings"

	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneConfident    Tone = "confident"
	ToneHumble       Tone = "humble"

	DefaultTone = ToneProfessional
)

// Tones lists the tones offered to users. Other values are passed to the model as-is.
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneEnthusiastic, ToneConfident, ToneHumble}

// Request is the body of a generate call.
type Request struct {
	Profile        *profile.Profile `json:"profile"`
	JobDescription string           `json:"jobDescription"`
	JobSource      string           `json:"jobSource"`
	Tone           Tone             `json:"tone"`
}

// Validate reports a ValidationError when the profile or job description is missing.
func (r Request) Validate() error {
	if r.Profile == nil || r.JobDescription == "" {
		return &ValidationError{Message: MissingInputMessage}
	}
	return nil
}

// EffectiveTone returns the requested tone, or the default when none was given.
func (r Request) EffectiveTone() Tone {
	if t := Tone(strings.TrimSpace(string(r.Tone))); t != "" {
		return t
	}
	return DefaultTone
}

type Response struct {
	Letter string `json:"letter"`
}
