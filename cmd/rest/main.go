package main

import (
	"context"
	"log"

	"ai-lessonplanner-be/internal/bootstrap"
	"ai-lessonplanner-be/internal/config"
	"ai-lessonplanner-be/internal/server"
	"ai-lessonplanner-be/internal/tracer"
	"ai-lessonplanner-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Ingest Consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	if container.AuditService != nil {
		go func() {
			log.Println("Background: Starting Event Audit Listener...")
			if err := container.AuditService.Listen(); err != nil {
				log.Printf("Background Audit Listener Error: %v", err)
			}
		}()
	}

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
