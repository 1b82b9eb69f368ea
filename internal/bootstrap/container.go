package bootstrap

import (
	"context"
	"log"

	"intern-matching-be/internal/config"
	"intern-matching-be/internal/controller"
	"intern-matching-be/internal/pkg/logger"
	"intern-matching-be/internal/repository/unitofwork"
	"intern-matching-be/internal/service"
	"intern-matching-be/pkg/embedding"
	"intern-matching-be/pkg/embedding/jina"

	pktNats "intern-matching-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MatchingController controller.IMatchingController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// 3. Embedding Provider based on Config.
	// Wrapped in a lazy handle so the process starts even when the backend is
	// down, and a broken provider fails fast on every request after the first.
	embeddingProvider := embedding.NewLazy(func() (embedding.Provider, error) {
		switch cfg.Ai.EmbeddingProvider {
		case "ollama":
			log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
			return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel), nil
		case "jina":
			log.Printf("[INFO] Using Embedding Provider: JINA AI")
			return jina.NewJinaProvider(cfg.Keys.Jina), nil
		default:
			log.Printf("[INFO] Using Embedding Provider: GEMINI")
			return embedding.NewGeminiProvider(cfg.Keys.GoogleGemini), nil
		}
	})

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)

	matchingService := service.NewMatchingService(
		uowFactory,
		embeddingProvider,
		natsPub,
		rdb,
		sysLogger,
		cfg.Ai.EmbedTimeout,
		cfg.Ai.MatchCacheTTL,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		matchingService,
		sysLogger,
	)

	// 6. Controllers
	matchingController := controller.NewMatchingController(matchingService, publisherService)

	return &Container{
		MatchingController: matchingController,
		ConsumerService:    consumerService,
	}
}
