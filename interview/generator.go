package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Chiru-Abhiram/mock-interview-ai/llm"
	"github.com/Chiru-Abhiram/mock-interview-ai/prompts"
	"github.com/Chiru-Abhiram/mock-interview-ai/schemas"
	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

// maxJobDescriptionChars caps how much of a job description enters the prompt.
const maxJobDescriptionChars = 2000

// Params describes one question-generation request.
type Params struct {
	// ResumeText is the candidate's resume content.
	ResumeText string
	// Role is the target role label, referenced by the canonical intro question.
	Role string
	// Count is the exact number of questions the script must contain.
	Count int
	// Difficulty targets a difficulty mix ("mixed" when empty).
	Difficulty string
	// JobDescription optionally grounds skill-alignment questions.
	JobDescription string
	// AutoCount lets the model pick an optimal count (5-12) instead of Count.
	// The returned script is still repaired to exactly Count entries.
	AutoCount bool
}

// Generator produces interview scripts. Generation failures of any kind fall
// through to the static question bank, so a script is always returned.
type Generator struct {
	gen    llm.Generator
	logger *slog.Logger
}

// GeneratorOption customizes a Generator.
type GeneratorOption func(*Generator)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a Generator over a generation invoker.
func NewGenerator(gen llm.Generator, opts ...GeneratorOption) *Generator {
	g := &Generator{gen: gen}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Generate builds an interview script for the given resume and role. The
// result always has exactly params.Count questions in canonical shape,
// regardless of what the generation service returned.
func (g *Generator) Generate(ctx context.Context, params Params) types.InterviewScript {
	role := params.Role
	if role == "" {
		role = "Software Engineer"
	}
	count := params.Count
	if count < 1 {
		count = 5
	}

	raw, err := g.gen.Invoke(ctx, llm.Request{Prompt: buildPrompt(params, role), StrictJSON: true})
	if err != nil {
		g.logger.WarnContext(ctx, "question generation failed, using static bank",
			"role", role, "error", err)
		return types.InterviewScript{Questions: FallbackQuestions(params.ResumeText, role, count)}
	}

	candidates, err := parseQuestions(raw)
	if err != nil {
		g.logger.WarnContext(ctx, "question generation returned an invalid payload, using static bank",
			"role", role, "error", err)
		return types.InterviewScript{Questions: FallbackQuestions(params.ResumeText, role, count)}
	}

	return types.InterviewScript{Questions: EnforceStructure(candidates, role, count)}
}

// buildPrompt assembles the generation prompt from the embedded template.
func buildPrompt(params Params, role string) string {
	difficulty := params.Difficulty
	if difficulty == "" {
		difficulty = "mixed"
	}

	quantity := fmt.Sprintf("Generate exactly %d questions.", params.Count)
	if params.AutoCount {
		quantity = "Select an optimal number of questions (5-12) based on the resume depth."
	}

	jobDesc := "None provided."
	if params.JobDescription != "" {
		desc := params.JobDescription
		if len(desc) > maxJobDescriptionChars {
			desc = desc[:maxJobDescriptionChars]
		}
		jobDesc = fmt.Sprintf("--- JOB DESCRIPTION ---\n%s\n---", desc)
	}

	return prompts.Format(prompts.MustGet("interview.json", "generate"), map[string]string{
		"QuantityInstruction":   quantity,
		"DifficultyInstruction": fmt.Sprintf("Target difficulty: %s.", difficulty),
		"ResumeText":            params.ResumeText,
		"JobDescription":        jobDesc,
		"Role":                  role,
	})
}

// wireQuestion is the loosely-typed shape questions arrive in. IDs may come
// back as floats; they are only an ordering hint and get rewritten anyway.
type wireQuestion struct {
	ID          json.Number `json:"id"`
	Text        string      `json:"text"`
	Type        string      `json:"type"`
	Difficulty  string      `json:"difficulty"`
	Context     string      `json:"context"`
	InitialCode string      `json:"initial_code"`
}

// parseQuestions validates a generation response and converts it into repaired
// Question values. Both the documented envelope ({"questions": [...]}) and a
// bare array are accepted; entries without text are dropped.
func parseQuestions(raw string) ([]types.Question, error) {
	cleaned := []byte(llm.CleanJSONBlock(raw))

	if err := schemas.Validate(schemas.Questions, cleaned); err != nil {
		return nil, err
	}

	var wire []wireQuestion
	var envelope struct {
		Questions []wireQuestion `json:"questions"`
	}
	if err := json.Unmarshal(cleaned, &envelope); err == nil {
		wire = envelope.Questions
	} else if err := json.Unmarshal(cleaned, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse question response: %w", err)
	}

	questions := make([]types.Question, 0, len(wire))
	for _, w := range wire {
		q := types.Question{
			Text:        w.Text,
			Type:        w.Type,
			Difficulty:  w.Difficulty,
			Context:     w.Context,
			InitialCode: w.InitialCode,
		}
		if id, err := w.ID.Float64(); err == nil {
			q.ID = int(id)
		}
		if q.Normalize() {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("question response contained no usable questions")
	}
	return questions, nil
}
