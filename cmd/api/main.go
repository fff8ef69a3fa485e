package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"central-gpt/config"
	_ "central-gpt/docs" // Swagger docs
	appconfigRepo "central-gpt/internal/appconfig/repository/postgre"
	appconfigUC "central-gpt/internal/appconfig/usecase"
	chatUC "central-gpt/internal/chat/usecase"
	"central-gpt/internal/httpserver"
	"central-gpt/internal/middleware"
	"central-gpt/pkg/deepseek"
	"central-gpt/pkg/keyrotation"
	"central-gpt/pkg/log"
	"central-gpt/pkg/postgres"
	"central-gpt/pkg/scope"
)

// @title       Central GPT API
// @description Chat back-end with multi-key Gemini rotation, access-key accounts and an admin console.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting Central GPT...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. PostgreSQL
	db, err := postgres.Connect(ctx, logger, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnectTimeout:  cfg.Postgres.ConnectTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "Failed to apply migrations: ", err)
		return
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// 5. Gemini key rotation client
	rotation, err := keyrotation.New(keyrotation.Config{
		Factory: keyrotation.GeminiFactory(keyrotation.GeminiConfig{
			Model:       cfg.Gemini.Model,
			APIURL:      cfg.Gemini.APIURL,
			Timeout:     cfg.Gemini.Timeout,
			Temperature: cfg.Gemini.Temperature,
			MaxTokens:   cfg.Gemini.MaxTokens,
		}),
		Logger: logger,
		Policy: keyrotation.Policy{
			MinInterval:   cfg.Gemini.Retry.MinInterval,
			BackoffBase:   cfg.Gemini.Retry.BackoffBase,
			BackoffMax:    cfg.Gemini.Retry.BackoffMax,
			EvictionDelay: cfg.Gemini.Retry.EvictionDelay,
			RetryDelay:    cfg.Gemini.Retry.RetryDelay,
			MaxAttempts:   cfg.Gemini.Retry.MaxAttempts,
		},
		Metrics: keyrotation.NewMetrics(registry),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize key rotation: ", err)
		return
	}

	// 6. Runtime settings, pushing the stored key pool into the rotation client
	configUC := appconfigUC.New(appconfigRepo.New(db, logger), logger, rotation, cfg.Gemini.APIKey)
	if err := configUC.Sync(ctx); err != nil {
		logger.Warnf(ctx, "Initial key sync failed, chat stays unavailable until keys are added: %v", err)
	} else {
		logger.Infof(ctx, "Gemini key pool loaded: %d key(s)", rotation.Status().KeyCount)
	}

	// 7. Session tokens
	jwtManager, err := scope.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// 8. DeepSeek fallback, bound per request to the key stored in app config
	deepseekFactory := func(apiKey string) (chatUC.Completer, error) {
		c, err := deepseek.New(deepseek.Config{
			APIKey:  apiKey,
			Model:   cfg.Deepseek.Model,
			BaseURL: cfg.Deepseek.BaseURL,
			Timeout: cfg.Deepseek.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		JWTManager:  jwtManager,
		Gatherer:    registry,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.Chat.RateLimitPerMin,
			Burst:          cfg.Chat.RateLimitBurst,
		},
		ConfigUC:        configUC,
		RotationStatus:  rotation,
		AdminKey:        cfg.Auth.AdminKey,
		Generator:       rotation,
		FallbackFactory: deepseekFactory,
		ChatOptions: chatUC.Options{
			HistorySize:     cfg.Chat.HistorySize,
			HistoryUsers:    cfg.Chat.HistoryUsers,
			HistoryTTL:      cfg.Chat.HistoryTTL,
			PersonaTemplate: cfg.Chat.PersonaTemplate,
			DevInfoTemplate: cfg.Chat.DevInfoTemplate,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
