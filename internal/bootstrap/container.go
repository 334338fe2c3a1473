package bootstrap

import (
	"log"

	"ai-lessonplanner-be/internal/config"
	"ai-lessonplanner-be/internal/controller"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/internal/repository/memory"
	"ai-lessonplanner-be/internal/repository/unitofwork"
	"ai-lessonplanner-be/internal/service"
	"ai-lessonplanner-be/pkg/embedding"
	"ai-lessonplanner-be/pkg/embedding/jina"
	"ai-lessonplanner-be/pkg/llm/factory"
	pkgNats "ai-lessonplanner-be/pkg/nats"
	"ai-lessonplanner-be/pkg/rag/aggregate"
	"ai-lessonplanner-be/pkg/rag/generate"
	"ai-lessonplanner-be/pkg/rag/planner"
	"ai-lessonplanner-be/pkg/rag/prompt"
	"ai-lessonplanner-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	LessonPlanController controller.ILessonPlanController
	AssessmentController controller.IAssessmentController
	IcebreakerController controller.IIcebreakerController
	DocumentController   controller.IDocumentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	AuditService    service.IAuditService

	// Shared facades
	Logger logger.ILogger
	Store  store.Store
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.OpenAI,
		cfg.Ai.LLMModel,
		llmBaseURL(cfg),
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// NATS (optional, warn-on-fail)
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	var auditService service.IAuditService
	if natsPub != nil {
		natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		} else {
			auditService = service.NewAuditService(natsSub, sysLogger)
		}
	}

	// 4. Context Store
	contextStore := store.NewPgStore(uowFactory, embeddingProvider, sysLogger)

	// 5. Artifact Cache
	var artifactCache memory.ArtifactCache
	if cfg.Cache.Backend == "redis" {
		artifactCache = memory.NewRedisArtifactCache(
			redisAddr(cfg.Cache.RedisURL),
			"",
			0,
			cfg.Cache.ArtifactTTL,
			sysLogger,
		)
		log.Printf("[INFO] Using Artifact Cache: REDIS")
	} else {
		artifactCache = memory.NewInMemoryArtifactCache(cfg.Cache.ArtifactTTL)
		log.Printf("[INFO] Using Artifact Cache: IN-MEMORY")
	}

	// 6. Content Pipeline
	retrievalPlanner := planner.NewPlanner()
	aggregator := aggregate.NewAggregator(contextStore, sysLogger)
	composer := prompt.NewComposer()
	generator := generate.NewClient(llmProvider, cfg.Ai.GenerationTimeout, sysLogger)

	// 7. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.IngestTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IngestTopic,
		contextStore,
		natsPub,
	)
	ingestService := service.NewIngestService(publisherService, uowFactory, sysLogger)

	lessonPlanService := service.NewLessonPlanService(
		retrievalPlanner, aggregator, composer, generator,
		artifactCache, natsPub, sysLogger,
	)
	assessmentService := service.NewAssessmentService(
		retrievalPlanner, aggregator, composer, generator,
		artifactCache, natsPub, sysLogger,
	)
	icebreakerService := service.NewIcebreakerService(
		retrievalPlanner, aggregator, composer, generator,
		artifactCache, natsPub, sysLogger,
	)

	// 8. Controllers
	return &Container{
		LessonPlanController: controller.NewLessonPlanController(lessonPlanService),
		AssessmentController: controller.NewAssessmentController(assessmentService),
		IcebreakerController: controller.NewIcebreakerController(icebreakerService),
		DocumentController:   controller.NewDocumentController(ingestService),
		ConsumerService:      consumerService,
		AuditService:         auditService,
		Logger:               sysLogger,
		Store:                contextStore,
	}
}

func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.LLMBaseURL
}

// redisAddr strips the scheme so the cache client gets a plain host:port.
func redisAddr(url string) string {
	const scheme = "redis://"
	if len(url) > len(scheme) && url[:len(scheme)] == scheme {
		return url[len(scheme):]
	}
	return url
}
