package interview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

// extendedDiscussionTag marks questions cloned to fill a short sequence.
const extendedDiscussionTag = " (Extended discussion)"

// PhraseMatcher matches text against an ordered list of fixed patterns,
// case-insensitively, first match wins. It backs intro/closing classification.
type PhraseMatcher struct {
	patterns []string
}

// NewPhraseMatcher creates a matcher over the given patterns.
func NewPhraseMatcher(patterns ...string) *PhraseMatcher {
	return &PhraseMatcher{patterns: patterns}
}

// Matches reports whether any pattern occurs in the text.
func (m *PhraseMatcher) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, pattern := range m.patterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// introMatcher recognizes introduction questions.
var introMatcher = NewPhraseMatcher(
	"tell me about yourself",
	"walk me through your background",
	"introduce yourself",
	"background",
	"what interested you",
)

// closingMatcher recognizes closing questions.
var closingMatcher = NewPhraseMatcher(
	"why hire you",
	"why should we hire",
	"what unique value",
	"great fit for this role",
	"wrap up",
	"any questions for",
)

// defaultIntroQuestion synthesizes the canonical opening question for a role.
func defaultIntroQuestion(role string) types.Question {
	return types.Question{
		ID:         1,
		Text:       fmt.Sprintf("To get us started, could you walk me through your background and what specifically interested you about this %s position?", role),
		Type:       types.TypeBehavioral,
		Difficulty: types.DifficultyEasy,
		Context:    "Opening question to establish rapport",
	}
}

// defaultClosingQuestion synthesizes the canonical wrap-up question.
func defaultClosingQuestion() types.Question {
	return types.Question{
		ID:         999,
		Text:       "Before we wrap up, why do you think you'd be a great fit for this role, and what unique value would you bring to our team?",
		Type:       types.TypeBehavioral,
		Difficulty: types.DifficultyMedium,
		Context:    "Closing question to assess self-awareness and fit",
	}
}

// emergencySeedQuestion seeds an empty middle pool so filling can proceed.
func emergencySeedQuestion() types.Question {
	return types.Question{
		Text:       "Could you walk me through a technical challenge you've faced?",
		Type:       types.TypeTechnical,
		Difficulty: types.DifficultyMedium,
		Context:    "Emergency fallback",
	}
}

// EnforceStructure validates and repairs a candidate question list into the
// canonical interview shape: an introduction first, a closing last whenever the
// sequence has more than two entries, exactly n questions, ids 1..n. Candidates
// are first ordered by their reported id (a best-effort hint from the
// generator). An already-valid sequence is returned with only its ids
// renumbered.
func EnforceStructure(candidates []types.Question, role string, n int) []types.Question {
	if n < 1 || len(candidates) == 0 {
		return []types.Question{}
	}

	questions := make([]types.Question, len(candidates))
	copy(questions, candidates)
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })

	firstIsIntro := introMatcher.Matches(questions[0].Text)
	lastIsClosing := len(questions) > 2 && closingMatcher.Matches(questions[len(questions)-1].Text)

	if firstIsIntro && len(questions) == n && (n <= 2 || lastIsClosing) {
		return renumber(questions)
	}

	// Partition: first matching intro, first matching closing (not the intro),
	// everything else in original order.
	var intro, closing *types.Question
	middle := make([]types.Question, 0, len(questions))
	for i := range questions {
		q := questions[i]
		switch {
		case intro == nil && introMatcher.Matches(q.Text):
			intro = &q
		case closing == nil && closingMatcher.Matches(q.Text):
			closing = &q
		default:
			middle = append(middle, q)
		}
	}

	if intro == nil {
		q := defaultIntroQuestion(role)
		intro = &q
	}
	if closing == nil && n > 2 {
		q := defaultClosingQuestion()
		closing = &q
	}

	targetMiddle := n - 1
	if closing != nil {
		targetMiddle = n - 2
	}
	if targetMiddle < 0 {
		targetMiddle = 0
	}

	if len(middle) == 0 && targetMiddle > 0 {
		middle = append(middle, emergencySeedQuestion())
	}
	if len(middle) < targetMiddle {
		middle = CyclicFill(middle, targetMiddle, extendedDiscussionTag)
	}

	final := make([]types.Question, 0, n)
	final = append(final, *intro)
	final = append(final, middle[:min(targetMiddle, len(middle))]...)
	if closing != nil {
		final = append(final, *closing)
	}

	if len(final) > n {
		final = final[:n]
	}
	return renumber(final)
}

// renumber rewrites ids to reflect final sequence order, 1..len.
func renumber(questions []types.Question) []types.Question {
	for i := range questions {
		questions[i].ID = i + 1
	}
	return questions
}
