package dto

import (
	"time"

	"buildhive-be/pkg/review"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required"`
}

type ReviewResponse struct {
	Id          uuid.UUID           `json:"id"`
	Language    string              `json:"language"`
	Score       int                 `json:"score"`
	Issues      []review.Issue      `json:"issues"`
	Suggestions []review.Suggestion `json:"suggestions"`
	Resources   []review.Resource   `json:"resources"`
	CreatedAt   time.Time           `json:"createdAt"`
}

type ReviewListItem struct {
	Id        uuid.UUID `json:"id"`
	Language  string    `json:"language"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewStatsResponse struct {
	TotalReviews      int64            `json:"totalReviews"`
	AverageScore      float64          `json:"averageScore"`
	LanguageBreakdown map[string]int64 `json:"languageBreakdown"`
}
