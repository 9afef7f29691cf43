package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"commit-assistant/internal/ai"
	"commit-assistant/internal/config"
	"commit-assistant/internal/observability"
	"commit-assistant/internal/ratelimit"
)

type Server struct {
	cfg      *config.Config
	logger   *observability.Logger
	provider ai.Provider
	limiter  *ratelimit.Limiter
	http     *http.Server
}

func NewServer(cfg *config.Config, logger *observability.Logger, provider ai.Provider) *Server {

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		limiter:  ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AITimeout + 10*time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.http.Shutdown(context.Background())
	}()

	s.logger.Info("starting server",
		"port", s.cfg.Port,
		"env", s.cfg.Env,
		"provider", s.cfg.AIProvider,
	)

	if err := s.http.ListenAndServe(); err != nil &&
		err != http.ErrServerClosed {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
