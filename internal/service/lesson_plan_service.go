package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
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

type ILessonPlanService interface {
	Generate(ctx context.Context, req *dto.GenerateLessonPlanRequest) (*dto.GenerateLessonPlanResponse, error)
}

type lessonPlanService struct {
	planner        *planner.Planner
	aggregator     *aggregate.Aggregator
	composer       *prompt.Composer
	generator      *generate.Client
	artifactCache  memory.ArtifactCache
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewLessonPlanService(
	p *planner.Planner,
	aggregator *aggregate.Aggregator,
	composer *prompt.Composer,
	generator *generate.Client,
	artifactCache memory.ArtifactCache,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) ILessonPlanService {
	return &lessonPlanService{
		planner:        p,
		aggregator:     aggregator,
		composer:       composer,
		generator:      generator,
		artifactCache:  artifactCache,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *lessonPlanService) Generate(ctx context.Context, req *dto.GenerateLessonPlanRequest) (*dto.GenerateLessonPlanResponse, error) {
	start := time.Now()

	creq := rag.ContentRequest{
		Subject:    req.Subject,
		Topic:      req.Topic,
		Subtopic:   req.Subtopic,
		Grade:      req.Grade,
		ExecSkills: req.ExecSkills,
		Disorder:   req.Disorder,
	}
	creq.Normalize()
	if err := creq.ResolveExecSkills(); err != nil {
		return nil, err
	}
	if err := creq.Validate(); err != nil {
		return nil, err
	}
	s.logState(creq, "validated")

	cacheKey := memory.ArtifactCacheKey(constant.ContentTypeLessonPlan,
		creq.Subject, creq.Topic, creq.Subtopic, creq.Grade, strings.Join(creq.ExecSkills, ","))
	if cached, found := s.artifactCache.Get(ctx, cacheKey); found {
		var res dto.GenerateLessonPlanResponse
		if err := json.Unmarshal(cached, &res); err == nil {
			s.logState(creq, "served from cache")
			return &res, nil
		}
	}

	s.logState(creq, "retrieving")
	blocks, err := s.aggregator.Execute(ctx, s.planner.LessonPlan(creq))
	if err != nil {
		return nil, err
	}

	s.logState(creq, "generating")
	promptText := s.composer.ComposeLessonPlan(creq, blocks)
	text, err := s.generator.Generate(ctx, promptText)
	if err != nil {
		if errors.Is(err, generate.ErrEmpty) {
			s.publishNotFound(ctx, creq)
			return nil, &rag.NotFoundError{
				Request:    creq,
				Suggestion: "Try a broader topic or a different grade level.",
			}
		}
		return nil, err
	}

	doc := artifact.ParseLesson(text, creq.Subject, creq.Topic, creq.Grade)
	res := &dto.GenerateLessonPlanResponse{
		LessonName: fmt.Sprintf("%s (Grade %s)", creq.Topic, creq.Grade),
		Subject:    creq.Subject,
		Topic:      creq.Topic,
		GradeLevel: creq.Grade,
		LessonPlan: text,
		Document:   doc,
	}

	if payload, err := json.Marshal(res); err == nil {
		s.artifactCache.Set(ctx, cacheKey, payload)
	}

	if s.eventPublisher != nil {
		evt := events.NewContentGeneratedEvent(constant.ContentTypeLessonPlan, creq.Subject, creq.Topic, creq.Grade, time.Since(start))
		// Auxiliary event, never fail the request over it
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("lesson_plan", "failed to publish CONTENT_GENERATED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	s.logState(creq, "succeeded")
	return res, nil
}

func (s *lessonPlanService) publishNotFound(ctx context.Context, req rag.ContentRequest) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.NewContentNotFoundEvent(constant.ContentTypeLessonPlan, req.Subject, req.Topic, req.Grade)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("lesson_plan", "failed to publish CONTENT_NOT_FOUND event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *lessonPlanService) logState(req rag.ContentRequest, state string) {
	s.logger.Debug("lesson_plan", state, map[string]interface{}{
		"subject": req.Subject,
		"topic":   req.Topic,
		"grade":   req.Grade,
	})
}
