package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"central-gpt/internal/appconfig"
	configHTTP "central-gpt/internal/appconfig/delivery/http"
	chatUC "central-gpt/internal/chat/usecase"
	"central-gpt/internal/middleware"
	"central-gpt/pkg/log"
	"central-gpt/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Infrastructure
	postgresDB *sql.DB
	jwtManager scope.Manager
	gatherer   prometheus.Gatherer
	rateLimit  middleware.RateLimitConfig

	// Key pool and runtime settings, built in main so they can be synced at startup
	configUC       appconfig.UseCase
	rotationStatus configHTTP.StatusProvider

	// Auth
	adminKey string

	// Chat domain
	generator       chatUC.Generator
	fallbackFactory chatUC.CompleterFactory
	chatOptions     chatUC.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB
	JWTManager scope.Manager
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer  prometheus.Gatherer
	RateLimit middleware.RateLimitConfig

	ConfigUC       appconfig.UseCase
	RotationStatus configHTTP.StatusProvider

	AdminKey string

	Generator       chatUC.Generator
	FallbackFactory chatUC.CompleterFactory
	ChatOptions     chatUC.Options
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		jwtManager:      cfg.JWTManager,
		gatherer:        cfg.Gatherer,
		rateLimit:       cfg.RateLimit,
		configUC:        cfg.ConfigUC,
		rotationStatus:  cfg.RotationStatus,
		adminKey:        cfg.AdminKey,
		generator:       cfg.Generator,
		fallbackFactory: cfg.FallbackFactory,
		chatOptions:     cfg.ChatOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.configUC == nil {
		return errors.New("config usecase is required")
	}
	if srv.generator == nil {
		return errors.New("generator is required")
	}
	return nil
}
