package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
)

type SDKConfig struct {
	APIKey     string
	Model      string
	BaseURL    string // empty uses the SDK default endpoint
	APIVersion string
	HTTPClient *http.Client
}

// SDKClient makes the same call through the google.golang.org/genai client.
type SDKClient struct {
	client *genai.Client
	model  string
}

func NewSDKClient(ctx context.Context, cfg SDKConfig) (*SDKClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &SDKClient{client: client, model: model}, nil
}

func (c *SDKClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok {
			return "", &domain.UpstreamError{Status: apiErr.Code, Body: upstreamBody(apiErr)}
		}
		return "", fmt.Errorf("upstream request failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", nil
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 || cand.Content.Parts[0] == nil {
		return "", nil
	}
	return cand.Content.Parts[0].Text, nil
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}

// upstreamBody rebuilds the error body the API sent. The SDK keeps a non-JSON
// body verbatim in Message and sets Status to the HTTP status line.
func upstreamBody(apiErr genai.APIError) string {
	if strings.HasPrefix(apiErr.Status, strconv.Itoa(apiErr.Code)+" ") {
		return apiErr.Message
	}
	data, err := json.Marshal(struct {
		Error genai.APIError `json:"error"`
	}{Error: apiErr})
	if err != nil {
		return apiErr.Message
	}
	return string(data)
}
