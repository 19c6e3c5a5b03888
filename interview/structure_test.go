package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

func TestEnforceStructure_ValidSequenceOnlyRenumbered(t *testing.T) {
	candidates := []types.Question{
		{ID: 10, Text: "Tell me about yourself.", Type: types.TypeBehavioral, Difficulty: types.DifficultyEasy},
		{ID: 20, Text: "Explain database indexing.", Type: types.TypeTechnical, Difficulty: types.DifficultyMedium},
		{ID: 30, Text: "Why should we hire you?", Type: types.TypeBehavioral, Difficulty: types.DifficultyMedium},
	}

	got := EnforceStructure(candidates, "Backend Engineer", 3)

	require.Len(t, got, 3)
	assert.Equal(t, "Tell me about yourself.", got[0].Text)
	assert.Equal(t, "Explain database indexing.", got[1].Text)
	assert.Equal(t, "Why should we hire you?", got[2].Text)
	assertSequentialIDs(t, got)
}

func TestEnforceStructure_SortsByReportedID(t *testing.T) {
	candidates := []types.Question{
		{ID: 3, Text: "Why should we hire you?"},
		{ID: 1, Text: "Tell me about yourself."},
		{ID: 2, Text: "Explain goroutines."},
	}

	got := EnforceStructure(candidates, "Engineer", 3)

	require.Len(t, got, 3)
	assert.Equal(t, "Tell me about yourself.", got[0].Text)
	assert.Equal(t, "Why should we hire you?", got[2].Text)
}

func TestEnforceStructure_SynthesizesMissingIntro(t *testing.T) {
	candidates := []types.Question{
		{ID: 1, Text: "Explain goroutines."},
		{ID: 2, Text: "Explain channels."},
		{ID: 3, Text: "Why should we hire you?"},
	}

	got := EnforceStructure(candidates, "Go Developer", 4)

	require.Len(t, got, 4)
	assert.Contains(t, got[0].Text, "walk me through your background")
	assert.Contains(t, got[0].Text, "Go Developer", "synthesized intro names the role")
	assert.Equal(t, "Why should we hire you?", got[3].Text, "candidate closing survives")
	assertSequentialIDs(t, got)
}

func TestEnforceStructure_SynthesizesMissingClosing(t *testing.T) {
	candidates := []types.Question{
		{ID: 1, Text: "Tell me about yourself."},
		{ID: 2, Text: "Explain goroutines."},
		{ID: 3, Text: "Explain channels."},
		{ID: 4, Text: "Explain interfaces."},
	}

	got := EnforceStructure(candidates, "Engineer", 4)

	require.Len(t, got, 4)
	assert.Equal(t, "Tell me about yourself.", got[0].Text)
	assert.Contains(t, got[3].Text, "great fit for this role")
	assertSequentialIDs(t, got)
}

func TestEnforceStructure_FillsShortSequence(t *testing.T) {
	candidates := []types.Question{
		{ID: 1, Text: "Tell me about yourself."},
		{ID: 2, Text: "Explain goroutines.", Context: "concurrency"},
	}

	got := EnforceStructure(candidates, "Engineer", 5)

	require.Len(t, got, 5)
	// Middle is cyclically filled from the one middle question.
	assert.Equal(t, "Explain goroutines.", got[1].Text)
	assert.Equal(t, "Explain goroutines.", got[2].Text)
	assert.Equal(t, "concurrency (Extended discussion)", got[2].Context)
	assert.Contains(t, got[4].Text, "great fit for this role")
	assertSequentialIDs(t, got)
}

func TestEnforceStructure_TruncatesLongSequence(t *testing.T) {
	candidates := []types.Question{
		{ID: 1, Text: "Tell me about yourself."},
		{ID: 2, Text: "Q two."},
		{ID: 3, Text: "Q three."},
		{ID: 4, Text: "Q four."},
		{ID: 5, Text: "Q five."},
		{ID: 6, Text: "Why should we hire you?"},
	}

	got := EnforceStructure(candidates, "Engineer", 4)

	require.Len(t, got, 4)
	assert.Equal(t, "Tell me about yourself.", got[0].Text)
	assert.Contains(t, got[3].Text, "hire you")
	assertSequentialIDs(t, got)
}

func TestEnforceStructure_SmallCountsSkipClosing(t *testing.T) {
	candidates := []types.Question{
		{ID: 1, Text: "Tell me about yourself."},
		{ID: 2, Text: "Explain goroutines."},
	}

	two := EnforceStructure(candidates, "Engineer", 2)
	require.Len(t, two, 2)
	assert.Equal(t, "Tell me about yourself.", two[0].Text)
	assert.NotContains(t, two[1].Text, "great fit")

	one := EnforceStructure(candidates, "Engineer", 1)
	require.Len(t, one, 1)
	assert.Equal(t, "Tell me about yourself.", one[0].Text)
}

func TestEnforceStructure_EmergencySeedWhenOnlyIntro(t *testing.T) {
	candidates := []types.Question{
		{ID: 1, Text: "Tell me about yourself."},
	}

	got := EnforceStructure(candidates, "Engineer", 4)

	require.Len(t, got, 4)
	assert.Contains(t, got[1].Text, "technical challenge")
	assertSequentialIDs(t, got)
}

func TestEnforceStructure_Idempotent(t *testing.T) {
	candidates := []types.Question{
		{ID: 7, Text: "Explain goroutines."},
		{ID: 5, Text: "Explain channels."},
	}

	first := EnforceStructure(candidates, "Engineer", 5)
	second := EnforceStructure(first, "Engineer", 5)

	assert.Equal(t, first, second)
}

func TestEnforceStructure_DegenerateInputs(t *testing.T) {
	assert.Empty(t, EnforceStructure(nil, "Engineer", 5))
	assert.Empty(t, EnforceStructure([]types.Question{{Text: "x"}}, "Engineer", 0))
}

func TestEnforceStructure_DoesNotMutateInput(t *testing.T) {
	candidates := []types.Question{
		{ID: 9, Text: "Explain goroutines."},
		{ID: 4, Text: "Tell me about yourself."},
	}

	_ = EnforceStructure(candidates, "Engineer", 3)

	assert.Equal(t, 9, candidates[0].ID)
	assert.Equal(t, "Explain goroutines.", candidates[0].Text)
}

func TestPhraseMatcher(t *testing.T) {
	m := NewPhraseMatcher("wrap up", "any questions for")

	assert.True(t, m.Matches("Before we WRAP UP, one last thing"))
	assert.True(t, m.Matches("Do you have any questions for us?"))
	assert.False(t, m.Matches("Let's keep going"))
}

func assertSequentialIDs(t *testing.T, questions []types.Question) {
	t.Helper()
	for i, q := range questions {
		assert.Equal(t, i+1, q.ID, "question at position %d", i)
	}
}
