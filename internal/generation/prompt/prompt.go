package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

const template = `
Write a clear, engaging, and personal cover letter for a job application.

✍️ **Instructions:**
1. Start with the applicant’s name, location, phone number, and email (one per line; omit any missing).
2. Use **natural, conversational language**. Avoid corporate jargon, clichés, or overly formal phrasing. Imagine you're talking to a supportive colleague.
3. Make the letter genuinely **personalized to the company's mission and values**, not just the job role. Show that you've done your research on *them*.
4. Clearly explain **why you're genuinely excited about this specific opportunity** and how your unique experiences, skills, and perspectives make you a great match for *their team and culture*.
5. Demonstrate a clear understanding of the job, but express your capabilities with **confident humility and a willingness to learn**, rather than just stating qualifications.
6. Maintain a **%s tone while also being friendly and professional**, and keep the letter concise, aiming for under 250 words.
7. Do not include greetings like “Hi there” or “Dear Hiring Manager.” Begin directly with the header and the letter's body.
8. Output only the final letter. No extra notes, explanations, or conversational filler.

---
📄 Applicant Profile:
%s

💼 Job Description:
%s

🔎 Job Source:
%s
---
`

// Build renders the generation prompt. It validates the request first, so a
// missing profile or job description never reaches the model.
func Build(req domain.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	profileJSON, err := ProfileJSON(req.Profile)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(template, req.EffectiveTone(), profileJSON, req.JobDescription, req.JobSource), nil
}

// ProfileJSON serialises the profile as two-space indented JSON without HTML escaping.
func ProfileJSON(p *profile.Profile) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("encode profile: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
