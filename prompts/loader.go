// Package prompts provides embedded prompt templates for the generation
// features. Prompts are stored as JSON files keyed by operation and embedded at
// compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// cache stores parsed prompt files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a prompt by filename and key.
// The filename should not include a path (e.g., "resume.json").
func Get(filename, key string) (string, error) {
	prompts, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}

	return prompt, nil
}

// MustGet retrieves a prompt by filename and key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// loadFile loads and caches a prompt file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if prompts, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return prompts, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}

	var prompts map[string]string
	if err := json.Unmarshal(data, &prompts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = prompts
	cacheMu.Unlock()

	return prompts, nil
}
