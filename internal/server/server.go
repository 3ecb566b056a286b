package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"techhive-users/config"
	"techhive-users/internal/handler"
	"techhive-users/internal/middleware"
	"techhive-users/internal/services"
	"techhive-users/internal/websocket"
	"techhive-users/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Users  *handler.UserHandler
	Health *handler.HealthHandler
	Events *websocket.Handler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, verifier services.TokenVerifier) {
	s.engine.Use(middleware.RequestIDMiddleware())

	if handlers.Health != nil {
		s.engine.GET("/ping", handlers.Health.Ping)
		s.engine.GET("/health", handlers.Health.Health)
	}

	api := APIPipeline(s.logger, verifier)
	users := s.engine.Group("/users")
	{
		users.GET("", api.Then(handlers.Users.List)...)
		users.POST("", api.Then(handlers.Users.Create)...)
		users.GET("/:id", api.Then(handlers.Users.Get)...)
		users.PUT("/:id", api.Then(handlers.Users.Update)...)
		users.DELETE("/:id", api.Then(handlers.Users.Delete)...)
	}

	if handlers.Events != nil {
		stream := StreamPipeline(s.logger, verifier)
		s.engine.GET("/events/users", stream.Then(handlers.Events.Connect)...)
	}
}

// Handler exposes the engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until SIGINT/SIGTERM or ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		s.logger.Errorf("Error in starting the server: %s", err)
		return err
	case <-quit:
		s.logger.Infof("Quitting signal received.. Shutting down within %s", s.config.ShutdownTimeout)
	case <-ctx.Done():
		s.logger.Infof("Context cancelled.. Shutting down within %s", s.config.ShutdownTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		return err
	}

	s.logger.Infof("Server stopped gracefully")
	return nil
}
