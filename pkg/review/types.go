package review

// Result is the structured outcome of one AI code review.
type Result struct {
	Score       int          `json:"score"`
	Issues      []Issue      `json:"issues"`
	Suggestions []Suggestion `json:"suggestions"`
	Resources   []Resource   `json:"resources"`
}

// Issue severity is one of "critical", "warning" or "info".
type Issue struct {
	Severity    string `json:"severity"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Line        *int   `json:"line,omitempty"`
	Suggestion  string `json:"suggestion,omitempty"`
}

type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code,omitempty"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
