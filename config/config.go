// Package config provides the process-wide generation configuration: the
// ordered credential pool and the ordered model cascade. A Config is built once
// at startup and passed by reference; it is never mutated afterwards, so it is
// safe for concurrent readers.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for the credential pool. The primary name is
// deliberately non-standard so SDK auto-discovery never picks up the
// comma-separated list as a single key; the legacy name is kept for transition.
const (
	EnvCredentials       = "RECRUITER_API_KEYS"
	EnvCredentialsLegacy = "GEMINI_API_KEYS"
	// EnvModels optionally overrides the model cascade (comma-separated).
	EnvModels = "INTERVIEW_MODELS"
)

// ErrNoCredentials indicates that no usable API credential was configured.
// This is fatal: no generation call can be attempted without a credential.
var ErrNoCredentials = errors.New("no API credentials configured: set " + EnvCredentials)

// DefaultModels is the candidate model cascade, ordered by preference. Newer
// flash models come first for speed and cost; the -latest aliases are the
// final resort.
func DefaultModels() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-2.5-pro",
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
		"gemini-flash-latest",
		"gemini-pro-latest",
	}
}

// Config holds the immutable credential pool and model cascade.
type Config struct {
	// Credentials are opaque API keys in rotation order. A credential's identity
	// is its position in this list.
	Credentials []string
	// Models are candidate model identifiers in preference order.
	Models []string
}

// Load builds the configuration from the environment. A .env file is loaded
// best-effort first. Returns ErrNoCredentials when neither the primary nor the
// legacy credential variable yields a usable key.
func Load() (*Config, error) {
	_ = godotenv.Load()

	creds := splitList(os.Getenv(EnvCredentials))
	if len(creds) == 0 {
		creds = splitList(os.Getenv(EnvCredentialsLegacy))
	}
	if len(creds) == 0 {
		return nil, ErrNoCredentials
	}

	models := splitList(os.Getenv(EnvModels))
	if len(models) == 0 {
		models = DefaultModels()
	}

	return &Config{Credentials: creds, Models: models}, nil
}

// splitList splits a comma-separated value, trimming whitespace and dropping
// empty entries.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
