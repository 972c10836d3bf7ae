package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"content-assistant/config"
	"content-assistant/internal/agents"
	chatHTTP "content-assistant/internal/chat/delivery/http"
	chatUC "content-assistant/internal/chat/usecase"
	"content-assistant/internal/classifier"
	"content-assistant/internal/httpserver"
	"content-assistant/internal/middleware"
	"content-assistant/internal/pending"
	"content-assistant/internal/session"
	"content-assistant/pkg/gemini"
	"content-assistant/pkg/log"
	pkgRedis "content-assistant/pkg/redis"
)

// @title       Content Assistant API
// @description Conversational intent routing for political content generation: quotes, motions, sharepics and web search.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Content Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Redis (conversation memory + pending coordination)
	redisCfg := pkgRedis.Config{
		URL:          cfg.Redis.URL,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		DialTimeout:  cfg.Redis.DialTimeout,
	}
	rdb, err := redisCfg.New()
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer rdb.Close()

	store := session.NewRedisStore(rdb, time.Duration(cfg.Session.TTLMinutes)*time.Minute, logger)
	coordinator := pending.NewRedisCoordinator(
		rdb,
		time.Duration(cfg.Pending.TTLMinutes)*time.Minute,
		time.Duration(cfg.Pending.LockSeconds)*time.Second,
		logger,
	)

	// 4. Gemini LLM client + classifier
	llm := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.BaseURL)
	cls := classifier.New(llm, logger)

	// 5. Agent registry
	registry := agents.NewRegistry()
	registry.Register(agents.NewZitatAgent(llm, logger))
	registry.Register(agents.NewAntragAgent(llm, logger))
	registry.Register(agents.NewUniversalAgent(llm, logger))
	registry.Register(agents.NewSharepicAgent(llm, logger))
	registry.Register(agents.NewImagineAgent(llm, logger))

	if cfg.Websearch.APIKey != "" && cfg.Websearch.EngineID != "" {
		searchSvc, searchErr := customsearch.NewService(ctx, option.WithAPIKey(cfg.Websearch.APIKey))
		if searchErr != nil {
			logger.Warnf(ctx, "Websearch not available (optional): %v", searchErr)
		} else {
			registry.Register(agents.NewWebsearchAgent(searchSvc, cfg.Websearch.EngineID, logger))
			logger.Info(ctx, "Websearch agent registered")
		}
	} else {
		logger.Warn(ctx, "Websearch skipped: WEBSEARCH_API_KEY or WEBSEARCH_ENGINE_ID is missing")
	}

	logger.Infof(ctx, "Registered agents: %v", registry.Names())

	// 6. Chat use case + delivery
	usage := agents.NewUsageRecorder()
	uc := chatUC.New(logger, store, coordinator, cls, registry, usage, cfg.Session.HistoryTokenLimit)
	chatHandler := chatHTTP.New(logger, uc, registry)

	mw := middleware.New(logger, cfg.RateLimit.RequestsPerMin)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatHandler: chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
