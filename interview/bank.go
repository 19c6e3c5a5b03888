package interview

import (
	"strings"

	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

// followUpTag marks bank questions reused to reach the requested count.
const followUpTag = " (Follow-up / Alternate angle)"

// Generic bank categories, always mixed in and excluded from skill matching.
const (
	categoryGeneralTechnical  = "general_technical"
	categoryGeneralBehavioral = "general_behavioral"
)

// defaultCategory is used when no skill category matches the resume text.
const defaultCategory = "python"

// questionBank is the static, categorized question collection: the final
// fallback tier when no AI call can be made. Keys are matched as substrings of
// the lowercased resume text.
var questionBank = map[string][]types.Question{
	"python": {
		{
			Text:       "For a start, I see you've worked with Python. If you were explaining the practical difference between a list and a tuple to a junior developer, how would you describe when it's absolutely critical to use one over the other?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyEasy,
			Context:    "Core Python proficiency with a conversational lens.",
		},
		{
			Text:       "I'm curious about your experience with advanced Python features. How have you used decorators in your previous projects to clean up or extend your code's functionality?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "Advanced Python concepts in a practical context.",
		},
		{
			Text:        "Let's look at a quick coding scenario. Could you write a short function for me that takes a string and returns it reversed? For example, 'hello' becoming 'olleh'.",
			Type:        types.TypeCoding,
			Difficulty:  types.DifficultyEasy,
			Context:     "Basic algorithmic thinking.",
			InitialCode: "def reverse_string(s):\n    # Your code here\n    pass",
		},
	},
	"javascript": {
		{
			Text:       "What is the difference between '==' and '===' in JavaScript?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyEasy,
			Context:    "JS fundamentals.",
		},
		{
			Text:       "Explain the concept of 'closures' in JavaScript with an example.",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "Scope and memory management in JS.",
		},
		{
			Text:        "Write a function that filters an array of numbers to return only the even ones.",
			Type:        types.TypeCoding,
			Difficulty:  types.DifficultyEasy,
			Context:     "Array manipulation in JS.",
			InitialCode: "function filterEvens(arr) {\n    // Your code here\n}",
		},
	},
	"react": {
		{
			Text:       "What are React Hooks? Explain useState and useEffect.",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyEasy,
			Context:    "Modern React development.",
		},
		{
			Text:       "What is the Virtual DOM, and how does React use it to improve performance?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "React architecture.",
		},
	},
	"docker": {
		{
			Text:       "I noticed you've containerized some of your work. How would you explain the difference between an image and a container, and how do layers affect your build times?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyEasy,
			Context:    "Container fundamentals.",
		},
		{
			Text:       "Walk me through how you'd slim down a bloated Docker image for a production service. What usually makes the biggest difference?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "Image optimization and multi-stage builds.",
		},
	},
	"sql": {
		{
			Text:       "When a query that used to be fast starts crawling, where do you look first? Talk me through how you'd read an execution plan.",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "Query tuning and indexing.",
		},
		{
			Text:       "Could you explain the difference between an INNER JOIN and a LEFT JOIN, maybe with a quick example from something you've built?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyEasy,
			Context:    "SQL fundamentals.",
		},
	},
	categoryGeneralTechnical: {
		{
			Text:       "Could you walk me through your debugging process? For example, when you hit a complex bug that isn't immediately obvious, what steps do you take to isolate the root cause?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "Debugging and problem-solving methodology.",
		},
		{
			Text:       "How do you approach testing your code? Do you lean more towards unit testing, integration testing, or a mix, and why?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyEasy,
			Context:    "Quality assurance mindset.",
		},
		{
			Text:       "When picking a new tool or library for a project, what criteria do you look for to decide if it's the right choice?",
			Type:       types.TypeTechnical,
			Difficulty: types.DifficultyMedium,
			Context:    "Tech stack decision making.",
		},
	},
	categoryGeneralBehavioral: {
		{
			Text:       "I'd love to hear about a project that really challenged you. What was the biggest hurdle you hit, and how did you navigate through it to get the results you wanted?",
			Type:       types.TypeBehavioral,
			Difficulty: types.DifficultyMedium,
			Context:    "Problem-solving and resilience.",
		},
		{
			Text:       "Thinking about your future, where do you see your career heading in the next couple of years, particularly in terms of the technical skills you want to master?",
			Type:       types.TypeBehavioral,
			Difficulty: types.DifficultyEasy,
			Context:    "Ambition and career alignment.",
		},
		{
			Text:       "We all hit points of friction in a team. Could you share a time when you disagreed with a teammate? How did you approach that conversation to find a path forward?",
			Type:       types.TypeBehavioral,
			Difficulty: types.DifficultyEasy,
			Context:    "Conflict resolution and teamwork.",
		},
		{
			Text:       "Can you describe a specific time you had to learn a new technology quickly to get a job done? How did you go about it?",
			Type:       types.TypeBehavioral,
			Difficulty: types.DifficultyMedium,
			Context:    "Adaptability and learning agility.",
		},
	},
}

// bankCategories is the deterministic iteration order over skill categories.
var bankCategories = []string{"python", "javascript", "react", "docker", "sql"}

// FallbackQuestions builds a complete interview script from the static bank,
// without any AI call. Skill categories whose key appears in the lowercased
// resume text contribute their questions; when none match, the default category
// stands in. The general technical and behavioral categories are always mixed
// in, and the pool is cyclically filled to reach exactly n questions with ids
// 1..n, closing question included whenever n > 1.
func FallbackQuestions(resumeText, role string, n int) []types.Question {
	if n < 1 {
		return []types.Question{}
	}

	resumeLower := strings.ToLower(resumeText)

	pool := []types.Question{}
	for _, category := range bankCategories {
		if strings.Contains(resumeLower, category) {
			pool = append(pool, questionBank[category]...)
		}
	}
	if len(pool) == 0 {
		pool = append(pool, questionBank[defaultCategory]...)
	}
	pool = append(pool, questionBank[categoryGeneralTechnical]...)
	pool = append(pool, questionBank[categoryGeneralBehavioral]...)

	middleCount := n - 2
	if n <= 1 {
		middleCount = n - 1
	}

	final := make([]types.Question, 0, n)
	final = append(final, defaultIntroQuestion(role))
	final = append(final, CyclicFill(pool, middleCount, followUpTag)...)
	if n > 1 {
		final = append(final, defaultClosingQuestion())
	}

	if len(final) > n {
		final = final[:n]
	}
	return renumber(final)
}
