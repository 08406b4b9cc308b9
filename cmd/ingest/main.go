package main

import (
	"context"
	"flag"
	"log"

	"assessment-advisor-be/internal/config"
	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/internal/service"
	"assessment-advisor-be/pkg/database"
	"assessment-advisor-be/pkg/embedding"

	"github.com/fatih/color"
)

// Loads the assessment catalog into Postgres and (re)builds the vector store.
// The REST server does this on demand when the store is empty; this command
// exists for operators who want to pay the embedding cost ahead of a deploy.
func main() {
	rebuild := flag.Bool("rebuild", false, "wipe all embeddings before indexing")
	flag.Parse()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	ctx := context.Background()

	if *rebuild {
		color.Yellow("Rebuild requested: wiping all embeddings...")
		uow := uowFactory.NewUnitOfWork(ctx)
		if err := uow.AssessmentEmbeddingRepository().DeleteAllUnscoped(ctx); err != nil {
			log.Fatalf("Failed to wipe embeddings: %v", err)
		}
	}

	indexer := service.NewIndexerService(uowFactory, embeddingProvider, cfg.Catalog.Path, sysLogger)

	indexed, err := indexer.Reindex(ctx)
	if err != nil {
		log.Fatalf("Indexing failed: %v", err)
	}

	color.Green("Indexed %d assessments from %s", indexed, cfg.Catalog.Path)
}
