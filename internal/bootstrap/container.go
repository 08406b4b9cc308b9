package bootstrap

import (
	"context"
	"log"
	"os"

	"assessment-advisor-be/internal/config"
	"assessment-advisor-be/internal/controller"
	"assessment-advisor-be/internal/pkg/logger"
	"assessment-advisor-be/internal/pkg/mailer"
	"assessment-advisor-be/internal/repository/unitofwork"
	"assessment-advisor-be/internal/service"
	"assessment-advisor-be/pkg/embedding"
	"assessment-advisor-be/pkg/llm/factory"
	"assessment-advisor-be/pkg/rag"
	"assessment-advisor-be/pkg/rag/cache"

	pktNats "assessment-advisor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	RecommendController controller.IRecommendController
	AdminController     controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService  service.IConsumerService
	RecommendService service.IRecommendService

	// Infrastructure handles for shutdown
	NatsPublisher *pktNats.Publisher
	SysLogger     logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.AlertEmail,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	// NATS is optional: a nil publisher no-ops and the service keeps serving.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis is optional too: without it answers are generated every time.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}
	answerCache := cache.NewAnswerCache(rdb, cfg.App.AnswerCacheTTL)

	// 5. Services
	indexerService := service.NewIndexerService(
		uowFactory,
		embeddingProvider,
		cfg.Catalog.Path,
		sysLogger,
	)

	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		indexerService,
	)

	// The chain factory runs once, on the first recommendation (or at boot
	// when eager init is on). An empty vector store gets built here, which
	// is why construction can be slow and why its failure must be sticky.
	retriever := rag.NewRetriever(embeddingProvider, log.New(os.Stdout, "", log.LstdFlags))
	chainFactory := func(ctx context.Context) (rag.Chain, error) {
		if err := indexerService.EnsureIndex(ctx); err != nil {
			return nil, err
		}
		return rag.NewChain(
			uowFactory,
			retriever,
			llmProvider,
			answerCache,
			natsPub,
			rag.DefaultRetrievalConfig(),
			log.New(os.Stdout, "", log.LstdFlags),
		), nil
	}

	recommendService := service.NewRecommendService(chainFactory, sysLogger, emailService)
	adminService := service.NewAdminService(uowFactory, publisherService, natsPub, sysLogger)

	// 6. Controllers
	return &Container{
		RecommendController: controller.NewRecommendController(recommendService),
		AdminController:     controller.NewAdminController(adminService),

		ConsumerService:  consumerService,
		RecommendService: recommendService,

		NatsPublisher: natsPub,
		SysLogger:     sysLogger,
	}
}
