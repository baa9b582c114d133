package domain

import "fmt"

const MissingInputMessage = "Missing profile or job description."

// ValidationError is returned before any upstream call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError carries a non-2xx response from the model provider.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API error: %s", e.Body)
}
