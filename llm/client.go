// Package llm provides the generation-call boundary for the mock-interview
// system: a per-credential Gemini backend and a credential × model rotation
// invoker that survives quota exhaustion and model unavailability.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Artifact identifies an uploaded file scoped to a single credential session.
type Artifact struct {
	Name     string
	URI      string
	MIMEType string
}

// Backend executes generation attempts under a single credential. A Backend is
// created per credential per Invoke call and closed when the rotation moves on.
type Backend interface {
	// Upload stores a local file with the service and returns a reference usable
	// in subsequent Generate calls under the same credential.
	Upload(ctx context.Context, path string) (*Artifact, error)
	// Generate submits the prompt (plus optional artifact) to the named model and
	// returns the textual response. An empty response is an error.
	Generate(ctx context.Context, model, prompt string, artifact *Artifact, strictJSON bool) (string, error)
	// Release deletes an uploaded artifact. Callers treat failures as non-fatal.
	Release(ctx context.Context, artifact *Artifact) error
	// Close releases any resources held by the backend.
	Close() error
}

// BackendFactory builds a Backend for one credential.
type BackendFactory func(ctx context.Context, apiKey string) (Backend, error)

// GeminiBackend implements Backend using Google Gemini.
type GeminiBackend struct {
	client *genai.Client
}

// NewGeminiBackend creates a Gemini backend authenticated with the given API key.
func NewGeminiBackend(ctx context.Context, apiKey string) (Backend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiBackend{client: client}, nil
}

// Upload stores a local file with the Gemini Files API.
func (b *GeminiBackend) Upload(ctx context.Context, path string) (*Artifact, error) {
	file, err := b.client.UploadFileFromPath(ctx, path, &genai.UploadFileOptions{
		DisplayName: "resume-" + uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file %s: %w", path, err)
	}

	return &Artifact{Name: file.Name, URI: file.URI, MIMEType: file.MIMEType}, nil
}

// Generate submits the prompt to the named Gemini model, attaching the uploaded
// artifact when present, and returns the concatenated text parts of the first
// candidate.
func (b *GeminiBackend) Generate(ctx context.Context, model, prompt string, artifact *Artifact, strictJSON bool) (string, error) {
	m := b.client.GenerativeModel(model)
	m.SetTemperature(0.1) // Low temperature for consistent output
	if strictJSON {
		m.ResponseMIMEType = "application/json"
	}

	var parts []genai.Part
	if artifact != nil {
		parts = append(parts, genai.FileData{MIMEType: artifact.MIMEType, URI: artifact.URI})
	}
	parts = append(parts, genai.Text(prompt))

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Release deletes an uploaded artifact.
func (b *GeminiBackend) Release(ctx context.Context, artifact *Artifact) error {
	if artifact == nil {
		return nil
	}
	return b.client.DeleteFile(ctx, artifact.Name)
}

// Close releases resources held by the backend.
func (b *GeminiBackend) Close() error {
	if b.client != nil {
		return b.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	text := strings.Join(parts, "")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text in response")
	}

	return text, nil
}
