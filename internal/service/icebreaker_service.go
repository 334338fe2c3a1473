package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-lessonplanner-be/internal/constant"
	"ai-lessonplanner-be/internal/dto"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/internal/repository/memory"
	"ai-lessonplanner-be/pkg/artifact"
	"ai-lessonplanner-be/pkg/events"
	pkgNats "ai-lessonplanner-be/pkg/nats"
	"ai-lessonplanner-be/pkg/rag"
	"ai-lessonplanner-be/pkg/rag/aggregate"
	"ai-lessonplanner-be/pkg/rag/generate"
	"ai-lessonplanner-be/pkg/rag/planner"
	"ai-lessonplanner-be/pkg/rag/prompt"
)

type IIcebreakerService interface {
	Generate(ctx context.Context, req *dto.GenerateIcebreakerRequest) (*dto.GenerateIcebreakerResponse, error)
}

type icebreakerService struct {
	planner        *planner.Planner
	aggregator     *aggregate.Aggregator
	composer       *prompt.Composer
	generator      *generate.Client
	artifactCache  memory.ArtifactCache
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewIcebreakerService(
	p *planner.Planner,
	aggregator *aggregate.Aggregator,
	composer *prompt.Composer,
	generator *generate.Client,
	artifactCache memory.ArtifactCache,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IIcebreakerService {
	return &icebreakerService{
		planner:        p,
		aggregator:     aggregator,
		composer:       composer,
		generator:      generator,
		artifactCache:  artifactCache,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *icebreakerService) Generate(ctx context.Context, req *dto.GenerateIcebreakerRequest) (*dto.GenerateIcebreakerResponse, error) {
	start := time.Now()

	creq := rag.ContentRequest{
		Grade:     req.Grade,
		Query:     req.Query,
		Materials: req.Materials,
		Setting:   req.Setting,
	}
	creq.Normalize()
	// Icebreakers retrieve from a shared collection without subject or
	// topic filters, so only the grade is required.
	if creq.Grade == "" {
		return nil, rag.NewValidationError("grade", "is required")
	}
	s.logState(creq, "validated")

	cacheKey := memory.ArtifactCacheKey(constant.ContentTypeIcebreaker,
		creq.Grade, creq.Query, creq.Materials, creq.Setting)
	if cached, found := s.artifactCache.Get(ctx, cacheKey); found {
		var res dto.GenerateIcebreakerResponse
		if err := json.Unmarshal(cached, &res); err == nil {
			s.logState(creq, "served from cache")
			return &res, nil
		}
	}

	s.logState(creq, "retrieving")
	blocks, err := s.aggregator.Execute(ctx, s.planner.Icebreaker(creq))
	if err != nil {
		return nil, err
	}

	s.logState(creq, "generating")
	promptText := s.composer.ComposeIcebreaker(creq, blocks)
	text, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		if errors.Is(err, generate.ErrEmpty) {
			s.publishNotFound(ctx, creq)
			return nil, &rag.NotFoundError{
				Request:    creq,
				Suggestion: "Try different materials or a less specific request.",
			}
		}
		return nil, err
	}

	res := &dto.GenerateIcebreakerResponse{
		Activity: text,
		Document: artifact.ParseIcebreaker(text),
	}

	if payload, err := json.Marshal(res); err == nil {
		s.artifactCache.Set(ctx, cacheKey, payload)
	}

	if s.eventPublisher != nil {
		evt := events.NewContentGeneratedEvent(constant.ContentTypeIcebreaker, "", creq.Query, creq.Grade, time.Since(start))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("icebreaker", "failed to publish CONTENT_GENERATED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.logState(creq, "succeeded")
	return res, nil
}

func (s *icebreakerService) publishNotFound(ctx context.Context, req rag.ContentRequest) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewContentNotFoundEvent(constant.ContentTypeIcebreaker, "", req.Query, req.Grade)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("icebreaker", "failed to publish CONTENT_NOT_FOUND event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *icebreakerService) logState(req rag.ContentRequest, state string) {
	s.logger.Debug("icebreaker", state, map[string]interface{}{
		"grade": req.Grade,
		"query": req.Query,
	})
}
