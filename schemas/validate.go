// Package schemas provides JSON Schema validation for generation-service
// responses. Generation output is loosely typed; every payload is checked
// against an embedded schema before it is allowed to enter the repair layer.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema names.
const (
	Questions     = "questions.schema.json"
	ResumeProfile = "resume_profile.schema.json"
	Evaluation    = "evaluation.schema.json"
)

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response does not match %s:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a raw JSON payload against one of the embedded schemas.
// Returns a *ValidationError when the payload is well-formed JSON of the wrong
// shape, or a wrapped error when the payload is not JSON at all.
func Validate(schemaName string, data []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation against %s failed: %w", schemaName, err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: schemaName}
	for _, resultErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resultErr.Field(),
			Message: resultErr.Description(),
		})
	}
	return ve
}
