package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"buildhive-be/pkg/llm"
)

// ErrUnavailable wraps any provider failure so callers can map it to a
// service-unavailable response without inspecting provider internals.
var ErrUnavailable = errors.New("ai review service unavailable")

// Analyzer proxies code to an LLM with a fixed review prompt and parses
// the JSON payload the model returns.
type Analyzer struct {
	provider llm.LLMProvider
}

func NewAnalyzer(provider llm.LLMProvider) *Analyzer {
	return &Analyzer{provider: provider}
}

func (a *Analyzer) Review(ctx context.Context, code, language string) (*Result, error) {
	prompt := buildPrompt(code, language)

	raw, err := a.provider.Generate(ctx, prompt, llm.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	result, err := ParseResult(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return result, nil
}

// ParseResult strips markdown code fences the model sometimes adds and
// decodes the review JSON.
func ParseResult(raw string) (*Result, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var result Result
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("malformed review payload: %w", err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}
	return &result, nil
}

func buildPrompt(code, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert code reviewer specializing in %s.\n\n", language)
	b.WriteString("Analyze this code and provide a comprehensive review:\n\n")
	fmt.Fprintf(&b, "```%s\n%s\n```\n\n", language, code)
	b.WriteString(`Provide your review in the following JSON format (output ONLY valid JSON, no markdown):
{
  "score": <number 0-100 based on code quality>,
  "issues": [
    {
      "severity": "critical|warning|info",
      "title": "Brief issue title",
      "description": "Detailed explanation",
      "line": <line number if applicable>,
      "suggestion": "How to fix it"
    }
  ],
  "suggestions": [
    {
      "title": "Improvement suggestion",
      "description": "Why this would help",
      "code": "Example improved code (optional)"
    }
  ],
  "resources": [
    {
      "title": "Resource name",
      "url": "https://..."
    }
  ]
}

Focus on:
- Bugs and potential errors
- Security vulnerabilities
- Performance issues
- Code readability and maintainability
`)
	fmt.Fprintf(&b, "- Best practices for %s\n", language)
	b.WriteString(`- Modern alternatives and patterns

Provide 2-5 issues, 2-4 suggestions, and 1-2 learning resources.`)
	return b.String()
}
