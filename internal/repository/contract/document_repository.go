package contract

import (
	"context"

	"ai-lessonplanner-be/internal/entity"
	"ai-lessonplanner-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredDocument wraps a Document with its similarity score
type ScoredDocument struct {
	Document   *entity.Document
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type DocumentRepository interface {
	Create(ctx context.Context, document *entity.Document) error
	CreateBulk(ctx context.Context, documents []*entity.Document) error
	Update(ctx context.Context, document *entity.Document) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCollectionId(ctx context.Context, collectionId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Advanced
	// SearchSimilarWithScore runs a cosine similarity search inside one
	// collection. Extra specs narrow the candidate set (metadata filters).
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, collectionId uuid.UUID, threshold float64, specs ...specification.Specification) ([]*ScoredDocument, error)
}
