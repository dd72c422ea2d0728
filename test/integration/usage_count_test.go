package integration

import (
	"context"
	"testing"
	"time"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/pkg/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDailyReviewCounting(t *testing.T) {
	factory := newTestFactory(t)
	uow := factory.NewUnitOfWork(context.Background())
	ctx := context.Background()

	user := createTestUser(t, uow)
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for i := 0; i < 3; i++ {
		err := uow.CodeReviewRepository().Create(ctx, &entity.CodeReview{
			Id:       uuid.New(),
			UserId:   &user.Id,
			Code:     "package main",
			Language: "go",
			Score:    70 + i,
			Issues: []review.Issue{
				{Severity: "info", Title: "Unused import", Description: "fmt is imported but never used"},
			},
		})
		assert.NoError(t, err)
	}

	t.Run("Count scopes to user and day", func(t *testing.T) {
		count, err := uow.CodeReviewRepository().Count(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.CreatedSince{Since: startOfDay},
		)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Other users are not counted", func(t *testing.T) {
		other := createTestUser(t, uow)
		count, err := uow.CodeReviewRepository().Count(ctx,
			specification.UserOwnedBy{UserID: other.Id},
			specification.CreatedSince{Since: startOfDay},
		)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Aggregates cover score and language", func(t *testing.T) {
		avg, err := uow.CodeReviewRepository().AverageScore(ctx,
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.InDelta(t, 71.0, avg, 0.01)

		breakdown, err := uow.CodeReviewRepository().LanguageBreakdown(ctx,
			specification.UserOwnedBy{UserID: user.Id},
		)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), breakdown["go"])
	})
}
