package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/api"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/config"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/common/middleware"
)

type Server struct {
	Router  *chi.Mux
	Handler *api.Handler
}

// CreateNewServer wires the storage clients from the loaded configuration.
// The clients stay unconnected until the first request needs them.
func CreateNewServer() (*Server, error) {
	return CreateServerWithClients(storage.NewClients(config.Config().StorageURL())), nil
}

// CreateServerWithClients builds a server around the given storage clients.
func CreateServerWithClients(clients *storage.Clients) *Server {
	return &Server{
		Router:  chi.NewRouter(),
		Handler: api.New(clients),
	}
}

// MountHandlers installs the admission stack and the REST routes. Order
// matters: logging and panic recovery wrap everything, CORS answers
// preflights before the limiters can reject them, then concurrency and
// rate admission guard the handlers.
func (s *Server) MountHandlers() {
	c := config.Config()
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(middleware.PanicHandler)
	if c.HandleCORS {
		s.HandleCORS()
	}
	s.Router.Use(middleware.ConcurrencyLimiter(c.MaxInFlight, time.Duration(c.QueueWaitMs)*time.Millisecond))
	s.Router.Use(middleware.RateLimiter(c.RateLimitRPS, c.RateLimitBurst))
	s.Router.Mount("/", s.Handler.Router())
}

func (s *Server) HandleCORS() {
	s.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{config.Config().CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Assets-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// Run serves until ctx is canceled, then drains in-flight requests within
// the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	c := config.Config()
	srv := &http.Server{
		Addr:              ":" + c.ServerPort,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("assets gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		grace := time.Duration(c.ShutdownGraceS) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		log.Info().Dur("grace", grace).Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
