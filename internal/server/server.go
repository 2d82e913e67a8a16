package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"homepage/internal/config"
	"homepage/internal/content"
	"homepage/internal/middlewares"
	"homepage/internal/repositories"
	"homepage/internal/services"
)

type Server struct {
	cfg        *config.Config
	httpServer *http.Server

	content          content.Service
	watcher          *content.Watcher
	promptService    services.PromptService
	bookmarkService  services.BookmarkService
	portfolioService services.PortfolioService
	blogService      services.BlogService

	rateLimiter *middlewares.RateLimiter
	registerer  prometheus.Registerer
	gatherer    prometheus.Gatherer

	// cancels background work (visitor cleanup, content watcher)
	stop context.CancelFunc
	ctx  context.Context
}

// NewServer loads the content root and wires the application against the
// default Prometheus registry.
func NewServer(cfg *config.Config) (*Server, error) {
	c, err := content.New(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content from %s: %w", cfg.ContentDir, err)
	}

	s := newServer(cfg, c, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	if cfg.ContentWatch {
		w, err := content.NewWatcher(cfg.ContentDir, c)
		if err != nil {
			s.stop()
			return nil, err
		}
		s.watcher = w
		go w.Run(s.ctx)
		log.Info().Str("dir", cfg.ContentDir).Msg("Watching content for changes")
	}

	return s, nil
}

func newServer(cfg *config.Config, c content.Service, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Server {
	promptRepo := repositories.NewPromptRepository(c)
	tileRepo := repositories.NewTileRepository(c)
	projectRepo := repositories.NewProjectRepository(c)
	postRepo := repositories.NewPostRepository(c)

	ctx, stop := context.WithCancel(context.Background())

	s := &Server{
		cfg:              cfg,
		content:          c,
		promptService:    services.NewPromptService(promptRepo),
		bookmarkService:  services.NewBookmarkService(tileRepo),
		portfolioService: services.NewPortfolioService(projectRepo),
		blogService:      services.NewBlogService(postRepo),
		rateLimiter:      middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		registerer:       reg,
		gatherer:         gatherer,
		ctx:              ctx,
		stop:             stop,
	}

	go s.rateLimiter.CleanupVisitors(ctx, time.Minute)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.cfg.Port).Msg("Starting server")
	return s.httpServer.ListenAndServe()
}

// Shutdown stops background work and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stop()
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("Error closing content watcher")
		}
		<-s.watcher.Done()
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) GracefulShutdown(done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown with error")
	}

	log.Info().Msg("Server exiting")
	done <- true
}
