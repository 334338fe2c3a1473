package service

import (
	"context"
	"encoding/json"

	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/internal/repository/specification"
	"ai-lessonplanner-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IIngestService interface {
	Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
	ListCollections(ctx context.Context) ([]*dto.ListCollectionsResponse, error)
}

type ingestService struct {
	publisherService IPublisherService
	uowFactory       unitofwork.RepositoryFactory
	logger           logger.ILogger
}

func NewIngestService(
	publisherService IPublisherService,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IIngestService {
	return &ingestService{
		publisherService: publisherService,
		uowFactory:       uowFactory,
		logger:           log,
	}
}

// Ingest accepts a document and hands it to the background embedding
// consumer. The write path returns before any embedding happens.
func (s *ingestService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	msg := dto.DocumentIngestMessage{
		Id:         uuid.New(),
		Collection: req.Collection,
		Content:    req.Content,
		Metadata:   req.Metadata,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, err
	}

	s.logger.Info("ingest", "document accepted", map[string]interface{}{
		"id":         msg.Id,
		"collection": msg.Collection,
		"bytes":      len(msg.Content),
	})

	return &dto.IngestDocumentResponse{Id: msg.Id}, nil
}

func (s *ingestService) ListCollections(ctx context.Context) ([]*dto.ListCollectionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collections, err := uow.CollectionRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ListCollectionsResponse, 0, len(collections))
	for _, col := range collections {
		count, err := uow.DocumentRepository().Count(ctx, specification.FilterBy{Field: "collection_id", Value: col.Id})
		if err != nil {
			return nil, err
		}
		result = append(result, &dto.ListCollectionsResponse{
			Name:  col.Name,
			Space: col.Space,
			Count: count,
		})
	}
	return result, nil
}
