package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-lessonplanner-be/internal/entity"
	"ai-lessonplanner-be/internal/repository/specification"
	"ai-lessonplanner-be/internal/repository/unitofwork"
	"ai-lessonplanner-be/pkg/database"

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

	assert.NotNil(t, uow.CollectionRepository())
	assert.NotNil(t, uow.DocumentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Collection round trip", func(t *testing.T) {
		ctx := context.Background()

		created := &entity.Collection{Name: "integration_test_collection", Space: "cosine"}
		err := uow.CollectionRepository().FirstOrCreate(ctx, created)
		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)

		// FirstOrCreate is idempotent on the name
		again := &entity.Collection{Name: "integration_test_collection", Space: "cosine"}
		err = uow.CollectionRepository().FirstOrCreate(ctx, again)
		assert.NoError(t, err)
		assert.Equal(t, created.Id, again.Id)

		found, err := uow.CollectionRepository().FindOne(ctx,
			specification.ByCollectionName{Name: "integration_test_collection"})
		assert.NoError(t, err)
		assert.Equal(t, created.Id, found.Id)
	})

	t.Run("Document count by collection", func(t *testing.T) {
		ctx := context.Background()

		col := &entity.Collection{Name: "integration_test_collection", Space: "cosine"}
		err := uow.CollectionRepository().FirstOrCreate(ctx, col)
		assert.NoError(t, err)

		_, err = uow.DocumentRepository().Count(ctx, specification.ByCollectionId{CollectionId: col.Id})
		assert.NoError(t, err)
	})
}
