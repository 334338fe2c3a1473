package main

import (
	"context"
	"log"

	"ai-lessonplanner-be/internal/config"
	"ai-lessonplanner-be/internal/constant"
	"ai-lessonplanner-be/internal/pkg/logger"
	"ai-lessonplanner-be/internal/repository/unitofwork"
	"ai-lessonplanner-be/pkg/database"
	"ai-lessonplanner-be/pkg/embedding"
	"ai-lessonplanner-be/pkg/store"
)

type seedDocument struct {
	collection string
	content    string
	metadata   map[string]interface{}
}

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	uowFactory := unitofwork.NewRepositoryFactory(db)
	contextStore := store.NewPgStore(uowFactory, embeddingProvider, sysLogger)

	ctx := context.Background()

	// Provision the known collections up front so the API starts against a
	// fully initialized store.
	collections := []string{
		constant.CollectionLessonPlans,
		constant.CollectionScienceLessons,
		constant.CollectionExecSkills,
		constant.CollectionIcebreakers,
	}
	for _, name := range collections {
		if _, err := contextStore.GetOrCreateCollection(ctx, name); err != nil {
			log.Fatalf("Error: Failed to create collection %s: %v", name, err)
		}
		log.Printf("Collection ready: %s", name)
	}

	seeds := sampleDocuments()
	for _, seed := range seeds {
		err := contextStore.Add(ctx, seed.collection, []store.Document{{
			Content:  seed.content,
			Metadata: seed.metadata,
		}})
		if err != nil {
			log.Fatalf("Error: Failed to seed document into %s: %v", seed.collection, err)
		}
	}

	log.Printf("Seeded %d documents.", len(seeds))
}

func sampleDocuments() []seedDocument {
	return []seedDocument{
		{
			collection: constant.CollectionLessonPlans,
			content: "Fractions are parts of a whole. Begin with a pizza cut into equal slices " +
				"and let students name halves, thirds and quarters before writing any notation.",
			metadata: map[string]interface{}{
				"grade":   "5",
				"topic":   "Fractions",
				"section": "intro_context",
			},
		},
		{
			collection: constant.CollectionLessonPlans,
			content: "Step 1: Fold a paper strip into equal parts. Step 2: Shade a given fraction. " +
				"Step 3: Compare shaded strips to order fractions by size.",
			metadata: map[string]interface{}{
				"grade":   "5",
				"topic":   "Fractions",
				"section": "instructional_steps",
			},
		},
		{
			collection: constant.CollectionLessonPlans,
			content: "Ask students to shade 3/4 of a grid and explain how they knew how many " +
				"cells to colour. Accept drawings as working.",
			metadata: map[string]interface{}{
				"grade":   "5",
				"topic":   "Fractions",
				"section": "assessment",
			},
		},
		{
			collection: constant.CollectionScienceLessons,
			content: "Show a sealed bag of ice melting on the desk. Students predict where the " +
				"water comes from and record their ideas before the lesson names the states of matter.",
			metadata: map[string]interface{}{
				"grade":   "4",
				"topic":   "States of Matter",
				"section": "engage",
			},
		},
		{
			collection: constant.CollectionScienceLessons,
			content: "Students sort cards of everyday materials into solid, liquid and gas, then " +
				"justify the tricky cases such as sand and honey.",
			metadata: map[string]interface{}{
				"grade":   "4",
				"topic":   "States of Matter",
				"section": "explore",
			},
		},
		{
			collection: constant.CollectionExecSkills,
			content: "Working memory support: keep instructions to two steps, pair verbal " +
				"directions with icons, and keep a worked example visible for the whole task.",
			metadata: map[string]interface{}{
				"executive_skill": "Enhancing Working Memory",
			},
		},
		{
			collection: constant.CollectionExecSkills,
			content: "Task initiation support: agree a silent start signal and give a first step " +
				"so small it cannot be done wrong.",
			metadata: map[string]interface{}{
				"executive_skill": "Task Initiation",
			},
		},
		{
			collection: constant.CollectionIcebreakers,
			content: "Silent line-up: students order themselves by birthday without speaking. " +
				"Debrief on which gestures worked and how it felt to communicate without words.",
			metadata: map[string]interface{}{
				"setting": "classroom",
			},
		},
		{
			collection: constant.CollectionIcebreakers,
			content: "Two truths and a wish: each student shares two true facts and one hope for " +
				"the term. Low pressure, no guessing required, works well for anxious students.",
			metadata: map[string]interface{}{
				"setting": "classroom",
			},
		},
	}
}
