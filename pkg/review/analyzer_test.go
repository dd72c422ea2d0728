package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResult(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantScore int
		wantErr   bool
	}{
		{
			name:      "plain json",
			raw:       `{"score": 85, "issues": [], "suggestions": [], "resources": []}`,
			wantScore: 85,
		},
		{
			name:      "json wrapped in markdown fences",
			raw:       "```json\n{\"score\": 70, \"issues\": [], \"suggestions\": [], \"resources\": []}\n```",
			wantScore: 70,
		},
		{
			name:      "bare fences without language tag",
			raw:       "```\n{\"score\": 42}\n```",
			wantScore: 42,
		},
		{
			name:      "score above range is clamped",
			raw:       `{"score": 150}`,
			wantScore: 100,
		},
		{
			name:      "negative score is clamped",
			raw:       `{"score": -5}`,
			wantScore: 0,
		},
		{
			name:    "not json at all",
			raw:     "I could not review this code.",
			wantErr: true,
		},
		{
			name:    "empty payload",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
		})
	}
}

func TestParseResultKeepsStructure(t *testing.T) {
	raw := `{
		"score": 60,
		"issues": [{"severity": "critical", "title": "SQL injection", "description": "Raw string concat in query", "line": 12, "suggestion": "Use placeholders"}],
		"suggestions": [{"title": "Extract helper", "description": "Reduces duplication"}],
		"resources": [{"title": "OWASP SQLi", "url": "https://owasp.org/www-community/attacks/SQL_Injection"}]
	}`

	result, err := ParseResult(raw)
	assert.NoError(t, err)
	assert.Len(t, result.Issues, 1)
	assert.Equal(t, "critical", result.Issues[0].Severity)
	if assert.NotNil(t, result.Issues[0].Line) {
		assert.Equal(t, 12, *result.Issues[0].Line)
	}
	assert.Len(t, result.Suggestions, 1)
	assert.Len(t, result.Resources, 1)
}

func TestBuildPromptMentionsLanguageAndCode(t *testing.T) {
	prompt := buildPrompt("print('hi')", "python")
	assert.Contains(t, prompt, "specializing in python")
	assert.Contains(t, prompt, "print('hi')")
	assert.Contains(t, prompt, "JSON format")
}
