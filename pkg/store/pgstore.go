package store

import (
	"context"
	"fmt"
	"time"

	"ai-lessonplanner-be/internal/entity"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/internal/repository/specification"
	"ai-lessonplanner-be/internal/repository/unitofwork"
	"ai-lessonplanner-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// PgStore implements Store on top of pgvector via the repository layer.
type PgStore struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	handles           *cache.Cache // collection name -> *Collection
	logger            logger.ILogger
}

var _ Store = &PgStore{}

func NewPgStore(uowFactory unitofwork.RepositoryFactory, embeddingProvider embedding.EmbeddingProvider, log logger.ILogger) *PgStore {
	return &PgStore{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		handles:           cache.New(1*time.Hour, 10*time.Minute),
		logger:            log,
	}
}

func (s *PgStore) GetOrCreateCollection(ctx context.Context, name string) (*Collection, error) {
	if x, found := s.handles.Get(name); found {
		return x.(*Collection), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	col := &entity.Collection{
		Id:    uuid.New(),
		Name:  name,
		Space: CosineSpace,
	}
	if err := uow.CollectionRepository().FirstOrCreate(ctx, col); err != nil {
		return nil, fmt.Errorf("get or create collection %q: %w", name, err)
	}

	handle := &Collection{
		ID:    col.Id.String(),
		Name:  col.Name,
		Space: col.Space,
	}
	s.handles.Set(name, handle, cache.DefaultExpiration)
	return handle, nil
}

func (s *PgStore) Query(ctx context.Context, collection string, queryText string, limit int, filters ...Filter) ([]Document, error) {
	handle, err := s.GetOrCreateCollection(ctx, collection)
	if err != nil {
		return nil, err
	}

	collectionId, err := uuid.Parse(handle.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid collection handle %q: %w", handle.ID, err)
	}

	embeddingRes, err := s.embeddingProvider.Generate(queryText, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	specs := filtersToSpecs(filters)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.DocumentRepository().SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		limit,
		collectionId,
		0.0,
		specs...,
	)
	if err != nil {
		s.logger.Error("store", "vector search failed", map[string]interface{}{
			"collection": collection,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("store", "vector search complete", map[string]interface{}{
		"collection": collection,
		"results":    len(scored),
	})

	docs := make([]Document, len(scored))
	for i, sd := range scored {
		docs[i] = Document{
			ID:       sd.Document.Id.String(),
			Content:  sd.Document.Content,
			Score:    float32(sd.Similarity),
			Metadata: sd.Document.Metadata,
		}
	}
	return docs, nil
}

func (s *PgStore) Add(ctx context.Context, collection string, documents []Document) error {
	if len(documents) == 0 {
		return nil
	}

	handle, err := s.GetOrCreateCollection(ctx, collection)
	if err != nil {
		return err
	}

	collectionId, err := uuid.Parse(handle.ID)
	if err != nil {
		return fmt.Errorf("invalid collection handle %q: %w", handle.ID, err)
	}

	entities := make([]*entity.Document, 0, len(documents))
	for i, doc := range documents {
		embeddingRes, err := s.embeddingProvider.Generate(doc.Content, "RETRIEVAL_DOCUMENT")
		if err != nil {
			return fmt.Errorf("embedding generation failed for chunk %d: %w", i, err)
		}
		entities = append(entities, &entity.Document{
			Id:             uuid.New(),
			CollectionId:   collectionId,
			Content:        doc.Content,
			Metadata:       doc.Metadata,
			EmbeddingValue: embeddingRes.Embedding.Values,
			ChunkIndex:     i,
		})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := uow.DocumentRepository().CreateBulk(ctx, entities); err != nil {
		uow.Rollback()
		return err
	}
	return uow.Commit()
}

func filtersToSpecs(filters []Filter) []specification.Specification {
	specs := make([]specification.Specification, 0, len(filters))
	for _, f := range filters {
		switch f.Op {
		case FilterOpIn:
			specs = append(specs, specification.MetadataIn{Key: f.Key, Values: f.Values})
		default:
			specs = append(specs, specification.MetadataEquals{Key: f.Key, Value: f.Value})
		}
	}
	return specs
}
