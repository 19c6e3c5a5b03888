// Package evaluation scores free-text interview answers. The evaluator never
// fails: when the generation service is rate-limited or unavailable it returns
// an explanatory zero-score result instead of an error.
package evaluation

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/Chiru-Abhiram/mock-interview-ai/llm"
	"github.com/Chiru-Abhiram/mock-interview-ai/prompts"
	"github.com/Chiru-Abhiram/mock-interview-ai/schemas"
	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

// skippedAnswerMarker flags an answer the candidate chose not to give.
const skippedAnswerMarker = "no answer provided"

// maxErrorExcerptLength caps the error text embedded in a fallback result.
const maxErrorExcerptLength = 100

// Evaluator scores candidate answers against their questions.
type Evaluator struct {
	gen    llm.Generator
	logger *slog.Logger
}

// EvaluatorOption customizes an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) { e.logger = logger }
}

// NewEvaluator creates an Evaluator over a generation invoker.
func NewEvaluator(gen llm.Generator, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{gen: gen}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// wireEvaluation is the loosely-typed response shape. Scores may arrive as
// floats.
type wireEvaluation struct {
	Score           json.Number `json:"score"`
	Feedback        string      `json:"feedback"`
	MissingKeywords []string    `json:"missing_keywords"`
	Improvements    string      `json:"improvements"`
	IdealAnswer     string      `json:"ideal_answer"`
}

// Evaluate scores one answer. A skipped answer (empty, or carrying the
// no-answer marker) always scores 0, whatever the service returns. Any failure
// yields a best-effort fallback result rather than an error.
func (e *Evaluator) Evaluate(ctx context.Context, question, answer string) types.EvaluationResult {
	skipped := isSkipped(answer)

	raw, err := e.gen.Invoke(ctx, llm.Request{Prompt: buildPrompt(question, answer, skipped), StrictJSON: true})
	if err != nil {
		e.logger.WarnContext(ctx, "answer evaluation failed", "error", err)
		return fallbackResult(err)
	}

	result, err := parseEvaluation(raw)
	if err != nil {
		e.logger.WarnContext(ctx, "answer evaluation returned an invalid payload", "error", err)
		return fallbackResult(err)
	}

	if skipped {
		result.Score = 0
	}
	return result
}

// isSkipped detects an answer the candidate did not actually give.
func isSkipped(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	return trimmed == "" || strings.Contains(strings.ToLower(trimmed), skippedAnswerMarker)
}

// buildPrompt assembles the evaluation prompt from the embedded template.
func buildPrompt(question, answer string, skipped bool) string {
	scoreInstruction := "(Be fair and critical)"
	idealInstruction := "Show what a 10/10 answer looks like."
	if skipped {
		answer = "NO ANSWER PROVIDED. CANDIDATE SKIPPED."
		scoreInstruction = "(MUST BE 0 since candidate skipped)"
		idealInstruction = "Since the candidate skipped, create a 10/10 answer."
	}

	return prompts.Format(prompts.MustGet("evaluation.json", "evaluate"), map[string]string{
		"Question":               question,
		"Answer":                 answer,
		"ScoreInstruction":       scoreInstruction,
		"IdealAnswerInstruction": idealInstruction,
	})
}

// parseEvaluation validates and converts an evaluation response, clamping the
// score into 0-10.
func parseEvaluation(raw string) (types.EvaluationResult, error) {
	cleaned := []byte(llm.CleanJSONBlock(raw))

	if err := schemas.Validate(schemas.Evaluation, cleaned); err != nil {
		return types.EvaluationResult{}, err
	}

	var wire wireEvaluation
	if err := json.Unmarshal(cleaned, &wire); err != nil {
		return types.EvaluationResult{}, err
	}

	score := 0
	if f, err := wire.Score.Float64(); err == nil {
		score = int(f)
	}
	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}

	keywords := wire.MissingKeywords
	if keywords == nil {
		keywords = []string{}
	}

	result := types.EvaluationResult{
		Score:           score,
		Feedback:        wire.Feedback,
		MissingKeywords: keywords,
		Improvements:    wire.Improvements,
		IdealAnswer:     wire.IdealAnswer,
	}
	if result.Feedback == "" {
		result.Feedback = "No feedback provided."
	}
	if result.Improvements == "" {
		result.Improvements = "No specific improvements suggested."
	}
	if result.IdealAnswer == "" {
		result.IdealAnswer = "No ideal answer provided."
	}
	return result, nil
}

// fallbackResult builds the user-facing result for a failed evaluation. Quota
// exhaustion gets a specific explanation; everything else a generic one with a
// truncated cause. Fallback scores are always 0.
func fallbackResult(err error) types.EvaluationResult {
	if llm.Classify(err) == llm.KindQuota {
		return types.EvaluationResult{
			Score:           0,
			Feedback:        "API quota limit reached. AI evaluation is temporarily paused.",
			MissingKeywords: []string{},
			Improvements:    "Please wait a few minutes or add more API keys.",
			IdealAnswer:     "The evaluation service is currently recharging its usage limits. Please check back in a bit.",
		}
	}

	excerpt := err.Error()
	if len(excerpt) > maxErrorExcerptLength {
		excerpt = excerpt[:maxErrorExcerptLength] + "..."
	}
	return types.EvaluationResult{
		Score:           0,
		Feedback:        "Evaluation service unavailable. Error: " + excerpt,
		MissingKeywords: []string{},
		Improvements:    "Check the API connection.",
		IdealAnswer:     "No ideal answer provided.",
	}
}
