package constant

import "strings"

// MaxReviewCodeLength caps submitted source text, enforced server-side.
const MaxReviewCodeLength = 20000

// SupportedReviewLanguages is the fixed allow-list for the review endpoint.
// Compared lower-cased.
var SupportedReviewLanguages = []string{
	"javascript",
	"typescript",
	"python",
	"java",
	"go",
	"rust",
	"cpp",
	"csharp",
	"php",
	"ruby",
	"swift",
	"kotlin",
}

func IsSupportedReviewLanguage(language string) bool {
	language = strings.ToLower(language)
	for _, l := range SupportedReviewLanguages {
		if l == language {
			return true
		}
	}
	return false
}
