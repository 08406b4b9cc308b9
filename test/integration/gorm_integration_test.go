package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
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

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.AssessmentRepository())
	assert.NotNil(t, uow.AssessmentEmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	// Verify Data Access (implies columns exist)
	t.Run("Check Assessment Repository", func(t *testing.T) {
		count, err := uow.AssessmentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Assessment count: %d", count)
	})

	t.Run("Check Assessment Embedding Repository", func(t *testing.T) {
		count, err := uow.AssessmentEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("AssessmentEmbedding count: %d", count)
	})
}
