// Package types provides type definitions for structured data used throughout the mock-interview system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Question type values.
const (
	TypeTechnical  = "technical"
	TypeBehavioral = "behavioral"
	TypeCoding     = "coding"
)

// Question difficulty values.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question represents a single interview question. IDs are positional: they are
// reassigned to match final sequence order and carry no stable identity.
type Question struct {
	ID          int    `json:"id"`
	Text        string `json:"text" validate:"required"`
	Type        string `json:"type" validate:"oneof=technical behavioral coding"`
	Difficulty  string `json:"difficulty" validate:"oneof=easy medium hard"`
	Context     string `json:"context"`
	InitialCode string `json:"initial_code,omitempty"`
}

// InterviewScript represents an ordered interview question sequence. It doubles
// as the wire envelope for question-generation responses.
type InterviewScript struct {
	Questions []Question `json:"questions"`
}

// Validate validates the Question using the validator.
func (q *Question) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}

// Normalize repairs a question that arrived with a loosely-typed shape: type and
// difficulty are lowercased and, when still not one of the known values, replaced
// with defaults. Text is trimmed. Returns false when the question is unusable
// (no text) and should be dropped.
func (q *Question) Normalize() bool {
	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return false
	}

	q.Type = strings.ToLower(strings.TrimSpace(q.Type))
	switch q.Type {
	case TypeTechnical, TypeBehavioral, TypeCoding:
	default:
		q.Type = TypeTechnical
	}

	q.Difficulty = strings.ToLower(strings.TrimSpace(q.Difficulty))
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		q.Difficulty = DifficultyMedium
	}

	return true
}

// Clone returns an independent copy of the question. Mutating the clone never
// affects the original. All fields are value types, so a shallow copy is total;
// the method keeps the copy semantics explicit at call sites that pad sequences
// with repeated entries.
func (q Question) Clone() Question {
	return q
}
