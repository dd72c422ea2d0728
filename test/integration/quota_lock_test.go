package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Runs the locked recount-and-insert protocol the review service uses,
// with many writers racing for the last slots of a small daily limit.
// Without the user-row lock, concurrent writers each count limit-1 and
// the user ends up over quota.
func TestConcurrentQuotaEnforcement(t *testing.T) {
	factory := newTestFactory(t)
	setupUow := factory.NewUnitOfWork(context.Background())
	user := createTestUser(t, setupUow)

	const limit = 2
	const writers = 6

	startOfDay := func() time.Time {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	submit := func(uow unitofwork.UnitOfWork) error {
		ctx := context.Background()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer uow.Rollback()

		if _, err := uow.UserRepository().FindOne(ctx,
			specification.ByID{ID: user.Id},
			specification.LockForUpdate{},
		); err != nil {
			return err
		}

		count, err := uow.CodeReviewRepository().Count(ctx,
			specification.UserOwnedBy{UserID: user.Id},
			specification.CreatedSince{Since: startOfDay()},
		)
		if err != nil {
			return err
		}
		if count >= limit {
			return nil
		}

		if err := uow.CodeReviewRepository().Create(ctx, &entity.CodeReview{
			Id:       uuid.New(),
			UserId:   &user.Id,
			Code:     "package main",
			Language: "go",
			Score:    80,
		}); err != nil {
			return err
		}
		return uow.Commit()
	}

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = submit(factory.NewUnitOfWork(context.Background()))
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "writer %d", i)
	}

	count, err := setupUow.CodeReviewRepository().Count(context.Background(),
		specification.UserOwnedBy{UserID: user.Id},
		specification.CreatedSince{Since: startOfDay()},
	)
	assert.NoError(t, err)
	assert.Equal(t, int64(limit), count, "recount under lock admits exactly the limit")
}
