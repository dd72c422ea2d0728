package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"buildhive-be/internal/entity"
	"buildhive-be/internal/repository/specification"
	"buildhive-be/internal/repository/unitofwork"
	"buildhive-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return unitofwork.NewRepositoryFactory(gormDB)
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:    uuid.New(),
		Email: "test-integration-" + uuid.New().String() + "@example.com",
		Name:  "Integration Test User",
		Plan:  "FREE",
	}
	err := uow.UserRepository().Create(context.Background(), user)
	assert.NoError(t, err)
	return user
}

func TestGormConnection(t *testing.T) {
	factory := newTestFactory(t)
	uow := factory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CodeReviewRepository())
	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.InterestRepository())
	assert.NotNil(t, uow.PaymentEventRepository())

	t.Run("Check Code Review Repository", func(t *testing.T) {
		count, err := uow.CodeReviewRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Code review count: %d", count)
	})

	t.Run("Check Project Repository", func(t *testing.T) {
		count, err := uow.ProjectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Project count: %d", count)
	})

	t.Run("Check Transactional Project And Interest", func(t *testing.T) {
		ctx := context.Background()
		owner := createTestUser(t, uow)
		applicant := createTestUser(t, uow)

		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		projectId := uuid.New()
		project := &entity.Project{
			Id:          projectId,
			OwnerId:     owner.Id,
			Title:       "Integration Project",
			Description: "Created inside a transaction",
			TechStack:   []string{"go", "postgres"},
			Difficulty:  "beginner",
			Category:    "web",
			Status:      entity.ProjectStatusOpen,
		}
		err = uow.ProjectRepository().Create(ctx, project)
		assert.NoError(t, err)

		interest := &entity.Interest{
			Id:        uuid.New(),
			ProjectId: projectId,
			UserId:    applicant.Id,
			Message:   "I would like to help with the backend",
			Status:    entity.InterestStatusPending,
		}
		err = uow.InterestRepository().Create(ctx, interest)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.InterestRepository().FindOne(context.Background(),
			specification.ByProject{ProjectID: projectId},
			specification.UserOwnedBy{UserID: applicant.Id},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)
		assert.Equal(t, entity.InterestStatusPending, found.Status)

		t.Log("Successfully created Project with Interest in Transaction")
	})
}
