package v1

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/support_reporter/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	cfg config.HTTP,
	supportPointsRepo SupportPointsRepository,
	filesProvider FilesProvider,
	clock func() time.Time,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(NewSupportPointsHandler(supportPointsRepo, filesProvider, clock)),
		},
	}
}

func NewRouter(h *SupportPointsHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tests/{test_id}/support-points", h.GetSupportPointsByTestID)
		r.Post("/support-points/parse", h.Parse)
		r.Get("/files", h.GetFiles)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
