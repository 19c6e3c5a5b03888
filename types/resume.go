package types

// ResumeProfile represents a structured view of an uploaded resume. Skills is
// set-like (no duplicates), Experience and Projects preserve source order.
// Profiles are created per request and never mutated after being returned.
type ResumeProfile struct {
	Text       string   `json:"text"`
	Filename   string   `json:"filename"`
	FileType   string   `json:"file_type"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Projects   []string `json:"projects"`
}

// EvaluationResult represents the outcome of scoring a single answer.
type EvaluationResult struct {
	Score           int      `json:"score"`
	Feedback        string   `json:"feedback"`
	MissingKeywords []string `json:"missing_keywords"`
	Improvements    string   `json:"improvements"`
	IdealAnswer     string   `json:"ideal_answer"`
}
