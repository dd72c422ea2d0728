package entity

import (
	"time"

	"github.com/google/uuid"

	"buildhive-be/pkg/review"
)

// CodeReview is one completed AI review. Rows are immutable after creation
// and double as the usage ledger for daily quota counting.
type CodeReview struct {
	Id          uuid.UUID
	UserId      *uuid.UUID // nil for guest reviews
	Code        string
	Language    string
	Score       int
	Issues      []review.Issue
	Suggestions []review.Suggestion
	Resources   []review.Resource
	CreatedAt   time.Time
}
