package main

import (
	"context"
	"log"

	"assessment-advisor-be/internal/bootstrap"
	"assessment-advisor-be/internal/config"
	"assessment-advisor-be/internal/server"
	"assessment-advisor-be/internal/tracer"
	"assessment-advisor-be/pkg/database"

	"github.com/fatih/color"
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
	defer container.NatsPublisher.Close()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Warm the RAG chain up front when configured. The default is lazy:
	// the first /recommend pays the initialization cost instead.
	if cfg.App.EagerInit {
		color.Yellow("Eager init: building RAG chain before serving...")
		if err := container.RecommendService.Warmup(context.Background()); err != nil {
			// The failure is sticky; serve anyway so /health can report it.
			color.Red("RAG chain initialization failed: %v", err)
		} else {
			color.Green("RAG chain ready")
		}
	}

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
