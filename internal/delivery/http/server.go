package delivery_http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	auth_http "inkwell-post-service/internal/delivery/http/auth"
	post_http "inkwell-post-service/internal/delivery/http/post"
	"inkwell-post-service/internal/logger"
	"inkwell-post-service/internal/metrics"
	"inkwell-post-service/internal/middleware"
)

type Server struct {
	postHTTPService *post_http.PostHTTPService
	authHTTPService *auth_http.AuthHTTPService
	authMiddleware  *middleware.Auth
	metrics         metrics.MetricsProvider
	server          *http.Server
	address         string
	port            int
	log             *logger.Logger
}

func NewServer(
	postHTTPService *post_http.PostHTTPService,
	authHTTPService *auth_http.AuthHTTPService,
	authMiddleware *middleware.Auth,
	address string,
	port int,
	log *logger.Logger,
	metricsProvider metrics.MetricsProvider,
) *Server {
	return &Server{
		postHTTPService: postHTTPService,
		authHTTPService: authHTTPService,
		authMiddleware:  authMiddleware,
		metrics:         metricsProvider,
		address:         address,
		port:            port,
		log:             log,
	}
}

func (s *Server) Run() error {
	mux := http.NewServeMux()
	s.postHTTPService.RegisterRoutes(mux, s.authMiddleware)
	s.authHTTPService.RegisterRoutes(mux)

	handler := middleware.Chain(mux,
		middleware.Recovery(s.log),
		middleware.Logger(s.log),
		middleware.Metrics(s.metrics),
	)

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
