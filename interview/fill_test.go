package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

func TestCyclicFill_ExactTarget(t *testing.T) {
	src := []types.Question{
		{Text: "a", Context: "ctx-a"},
		{Text: "b", Context: "ctx-b"},
	}

	got := CyclicFill(src, 5, " (again)")

	assert.Len(t, got, 5)
	assert.Equal(t, []string{"a", "b", "a", "b", "a"}, textsOf(got))
}

func TestCyclicFill_SuffixOnlyOnWrappedEntries(t *testing.T) {
	src := []types.Question{
		{Text: "a", Context: "ctx-a"},
		{Text: "b", Context: "ctx-b"},
	}

	got := CyclicFill(src, 4, " (again)")

	assert.Equal(t, "ctx-a", got[0].Context)
	assert.Equal(t, "ctx-b", got[1].Context)
	assert.Equal(t, "ctx-a (again)", got[2].Context)
	assert.Equal(t, "ctx-b (again)", got[3].Context)
}

func TestCyclicFill_TargetWithinSource(t *testing.T) {
	src := []types.Question{{Text: "a"}, {Text: "b"}, {Text: "c"}}

	got := CyclicFill(src, 2, " (again)")

	assert.Equal(t, []string{"a", "b"}, textsOf(got))
}

func TestCyclicFill_ClonesAreIndependent(t *testing.T) {
	src := []types.Question{{Text: "a", Context: "ctx"}}

	got := CyclicFill(src, 3, " (again)")
	got[0].Text = "mutated"
	got[1].Context = "changed"

	assert.Equal(t, "a", src[0].Text)
	assert.Equal(t, "ctx", src[0].Context)
	assert.Equal(t, "a", got[2].Text)
}

func TestCyclicFill_DegenerateInputs(t *testing.T) {
	assert.Empty(t, CyclicFill(nil, 3, ""))
	assert.Empty(t, CyclicFill([]types.Question{{Text: "a"}}, 0, ""))
	assert.Empty(t, CyclicFill([]types.Question{{Text: "a"}}, -1, ""))
}

func textsOf(questions []types.Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.Text)
	}
	return out
}
