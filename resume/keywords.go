package resume

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// techVocabulary is the fixed list of technology and process terms the AI-free
// fallback scans for. Matches are reported in this order.
var techVocabulary = []string{
	"python", "javascript", "react", "next.js", "node.js", "typescript", "java", "c++",
	"aws", "azure", "docker", "kubernetes", "sql", "mongodb", "postgresql", "git",
	"html", "css", "tailwind", "fastapi", "django", "flask", "spring", "agile", "scrum",
	"machine learning", "data science", "devops", "ci/cd", "rest api", "graphql",
}

// experienceLineMinLength is the trimmed length a line must exceed to count as
// an experience entry.
const experienceLineMinLength = 50

// maxExperienceLines caps how many experience lines the fallback collects.
const maxExperienceLines = 10

var (
	vocabularyPatterns = compileVocabulary()
	titleCaser         = cases.Title(language.English)
)

// compileVocabulary builds one case-insensitive whole-word pattern per term.
// Word boundaries are only asserted next to word characters, so terms like
// "c++" or "ci/cd" still anchor correctly.
func compileVocabulary() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(techVocabulary))
	for _, term := range techVocabulary {
		expr := regexp.QuoteMeta(term)
		if isWordByte(term[0]) {
			expr = `\b` + expr
		}
		if isWordByte(term[len(term)-1]) {
			expr += `\b`
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)`+expr))
	}
	return patterns
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ExtractKeywordProfile is the deterministic, AI-free extraction tier. Skills
// are vocabulary terms found in the text, title-cased, without duplicates.
// Experience entries are the first ten lines whose trimmed length exceeds 50
// characters, in original order. Projects are always empty at this tier.
func ExtractKeywordProfile(text string) (skills, experience, projects []string) {
	skills = []string{}
	for i, pattern := range vocabularyPatterns {
		if pattern.MatchString(text) {
			skills = append(skills, titleCaser.String(techVocabulary[i]))
		}
	}

	experience = []string{}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > experienceLineMinLength {
			experience = append(experience, trimmed)
			if len(experience) == maxExperienceLines {
				break
			}
		}
	}

	return skills, experience, []string{}
}
