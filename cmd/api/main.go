package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/edu-assistant/backend/internal/analytics"
	"github.com/edu-assistant/backend/internal/api/handlers"
	"github.com/edu-assistant/backend/internal/assistant"
	"github.com/edu-assistant/backend/internal/cache/redis"
	"github.com/edu-assistant/backend/internal/knowledge"
	"github.com/edu-assistant/backend/internal/metrics"
	"github.com/edu-assistant/backend/internal/middleware/ratelimit"
	securitymw "github.com/edu-assistant/backend/internal/middleware/security"
	"github.com/edu-assistant/backend/internal/middleware/validation"
	"github.com/edu-assistant/backend/internal/ranking"
	"github.com/edu-assistant/backend/internal/respond"
	"github.com/edu-assistant/backend/internal/security"
	"github.com/edu-assistant/backend/internal/storage/memory"
	"github.com/edu-assistant/backend/internal/storage/models"
	"github.com/edu-assistant/backend/internal/storage/sqlite"
	"github.com/edu-assistant/backend/pkg/config"
	appLogger "github.com/edu-assistant/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Educational Assistant API Server")

	metrics.Init()

	store := knowledge.NewStore(knowledge.SeedEntries())

	var conversations models.ConversationStore
	var knowledgeRepo models.KnowledgeRepository

	if cfg.SQLite.Enabled {
		sqliteClient, err := sqlite.NewClient(cfg.SQLite.Path)
		if err != nil {
			appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
		}
		defer sqliteClient.Close()

		if err := sqliteClient.InitSchema(); err != nil {
			appLogger.Fatal("Failed to initialize schema", zap.Error(err))
		}

		entries, err := sqliteClient.LoadKnowledgeEntries(context.Background())
		if err != nil {
			appLogger.Warn("Failed to load stored knowledge entries", zap.Error(err))
		}
		for _, e := range entries {
			if _, err := store.AddEntry(e); err != nil {
				appLogger.Warn("Skipping stored knowledge entry",
					zap.String("topic", e.Topic),
					zap.Error(err),
				)
			}
		}

		conversations = sqliteClient
		knowledgeRepo = sqliteClient
	} else {
		appLogger.Info("SQLite disabled, using in-memory conversation store")
		conversations = memory.NewStore()
	}

	ranker, err := ranking.New(cfg.Retrieval.Strategy, store.All(), ranking.Config{
		MinScore:     cfg.Retrieval.MinScore,
		SubjectBoost: cfg.Retrieval.SubjectBoost,
	})
	if err != nil {
		appLogger.Fatal("Failed to create retrieval strategy", zap.Error(err))
	}

	var answerCache *redis.Client
	if cfg.Redis.Enabled {
		answerCache, err = redis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Warn("Failed to connect to Redis, running without answer cache", zap.Error(err))
			answerCache = nil
		} else {
			defer answerCache.Close()
		}
	}

	engine := assistant.NewEngine(assistant.Options{
		Store:         store,
		Ranker:        ranker,
		Composer:      respond.NewComposer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Validator:     security.NewValidator(cfg.Security.MinQuestionLength, cfg.Security.MaxQuestionLength, cfg.Security.BlockedWords),
		Conversations: conversations,
		KnowledgeRepo: knowledgeRepo,
		Tracker:       analytics.NewTracker(),
		Cache:         answerCache,
		CacheTTL:      time.Duration(cfg.Redis.AnswerTTLs) * time.Second,
		TopK:          cfg.Retrieval.TopK,
	})

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Session-ID, X-User-Role",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(securitymw.HeadersMiddleware(securitymw.HeadersConfig{}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Logger:               appLogger.Log,
	})
	defer limiter.Stop()

	assistantHandler := handlers.NewAssistantHandler(engine)
	wsHandler := handlers.NewWebSocketHandler(engine)

	api := app.Group("/api/v1")
	api.Use(limiter.Middleware())
	api.Use(validation.Middleware(validation.Config{
		MaxQuestionLength: cfg.Security.MaxQuestionLength,
		Logger:            appLogger.Log,
	}))

	api.Post("/ask", assistantHandler.HandleAsk)
	api.Get("/history", assistantHandler.HandleHistory)
	api.Post("/feedback", assistantHandler.HandleFeedback)
	api.Get("/subjects", assistantHandler.HandleSubjects)
	api.Post("/knowledge", assistantHandler.HandleAddKnowledge)
	api.Get("/session/stats", assistantHandler.HandleSessionStats)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	api.Get("/ready", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ready",
			"entries": store.Count(),
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(wsHandler.HandleConnection))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
