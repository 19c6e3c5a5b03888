package llm

import "strings"

// CleanJSONBlock strips the decoration models wrap around JSON payloads even
// when instructed not to: markdown code fences (with or without a language
// identifier) and conversational preamble before the first brace or bracket.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the first line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Preamble before the payload ("Here is the JSON: {...}").
	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		objIdx := strings.Index(text, "{")
		arrIdx := strings.Index(text, "[")
		start := objIdx
		if start < 0 || (arrIdx >= 0 && arrIdx < start) {
			start = arrIdx
		}
		if start > 0 {
			text = strings.TrimSpace(text[start:])
		}
	}

	return text
}
