package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

func TestFallbackQuestions_MatchedCategoriesContribute(t *testing.T) {
	got := FallbackQuestions("I used React and Docker in my last role.", "Backend Engineer", 6)

	require.Len(t, got, 6)
	assert.Contains(t, got[0].Text, "Backend Engineer", "opens with the role-specific intro")
	assert.Contains(t, got[5].Text, "great fit for this role", "ends with the closing")
	assertSequentialIDs(t, got)

	// Middle starts with the matched skill pools in category order: react then docker.
	assert.Contains(t, got[1].Text, "React Hooks")
	assert.Contains(t, got[2].Text, "Virtual DOM")
	assert.Contains(t, got[3].Text, "image and a container")
	assert.Contains(t, got[4].Text, "slim down a bloated Docker image")
}

func TestFallbackQuestions_NoMatchFallsBackToDefaultCategory(t *testing.T) {
	got := FallbackQuestions("I enjoy gardening.", "Engineer", 5)

	require.Len(t, got, 5)
	assert.Contains(t, got[1].Text, "list and a tuple", "default pool is the python category")
	assertSequentialIDs(t, got)
}

func TestFallbackQuestions_CaseInsensitiveMatch(t *testing.T) {
	got := FallbackQuestions("Heavy PYTHON and Sql experience.", "Engineer", 8)

	texts := strings.Join(textsOf(got), "\n")
	assert.Contains(t, texts, "list and a tuple")
	assert.Contains(t, texts, "INNER JOIN")
}

func TestFallbackQuestions_FollowUpTagOnWrappedEntries(t *testing.T) {
	// One matched category (react: 2) plus generics (3+4) gives a pool of 9;
	// a request for 12 forces one wrap-around in the middle.
	got := FallbackQuestions("react", "Engineer", 12)

	require.Len(t, got, 12)
	var tagged int
	for _, q := range got {
		if strings.HasSuffix(q.Context, followUpTag) {
			tagged++
		}
	}
	assert.Equal(t, 1, tagged)
	assertSequentialIDs(t, got)
}

func TestFallbackQuestions_SmallCounts(t *testing.T) {
	one := FallbackQuestions("python", "Engineer", 1)
	require.Len(t, one, 1)
	assert.Contains(t, one[0].Text, "walk me through your background")

	two := FallbackQuestions("python", "Engineer", 2)
	require.Len(t, two, 2)
	assert.Contains(t, two[1].Text, "great fit for this role")

	assert.Empty(t, FallbackQuestions("python", "Engineer", 0))
}

func TestFallbackQuestions_Deterministic(t *testing.T) {
	first := FallbackQuestions("python and javascript", "Engineer", 7)
	second := FallbackQuestions("python and javascript", "Engineer", 7)

	assert.Equal(t, first, second)
}

func TestFallbackQuestions_EveryQuestionUsable(t *testing.T) {
	got := FallbackQuestions("docker sql react javascript python", "Engineer", 10)

	for _, q := range got {
		assert.NotEmpty(t, q.Text)
		assert.Contains(t, []string{types.TypeTechnical, types.TypeBehavioral, types.TypeCoding}, q.Type)
		assert.Contains(t, []string{types.DifficultyEasy, types.DifficultyMedium, types.DifficultyHard}, q.Difficulty)
	}
}
