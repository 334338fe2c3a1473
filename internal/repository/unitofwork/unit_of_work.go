package unitofwork

import (
	"context"

	"ai-lessonplanner-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CollectionRepository() contract.CollectionRepository
	DocumentRepository() contract.DocumentRepository
}
