// Package letter post-processes generated cover letters for display.
package letter

import (
	"regexp"
	"strings"

	profile "github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

// hint is an optional parenthetical annotation before the closing bracket,
// e.g. [Your Name (as on your resume)].
const hint = `\s*(?:\([^()\[\]]*\)\s*)?\]`

var (
	namePlaceholder     = regexp.MustCompile(`(?i)\[\s*your\s+(?:full\s+)?name` + hint)
	locationPlaceholder = regexp.MustCompile(`(?i)\[\s*your\s+(?:address|location)` + hint)
	phonePlaceholder    = regexp.MustCompile(`(?i)\[\s*your\s+phone(?:\s+number)?` + hint)
	emailPlaceholder    = regexp.MustCompile(`(?i)\[\s*your\s+email(?:\s+address)?` + hint)

	bracketSpan   = regexp.MustCompile(`\[[^\[\]\n]*\]`)
	extraNewlines = regexp.MustCompile(`(?:\r?\n){3,}`)
)

// Clean fills the name, location, phone and email placeholders from p,
// drops every other single-line bracketed span, collapses runs of blank lines to one and
// trims the result. A nil profile skips substitution. Clean is pure, so
// callers re-run it on the raw letter whenever the profile changes.
func Clean(text string, p *profile.Profile) string {
	if text == "" {
		return ""
	}

	if p != nil {
		text = namePlaceholder.ReplaceAllLiteralString(text, p.Name)
		text = locationPlaceholder.ReplaceAllLiteralString(text, p.Location)
		text = phonePlaceholder.ReplaceAllLiteralString(text, p.Phone)
		text = emailPlaceholder.ReplaceAllLiteralString(text, p.Email)
	}

	// Innermost spans go first; repeat so nested brackets leave nothing behind.
	for bracketSpan.MatchString(text) {
		text = bracketSpan.ReplaceAllLiteralString(text, "")
	}

	text = extraNewlines.ReplaceAllLiteralString(text, "\n\n")
	return strings.TrimSpace(text)
}
