// Package api assembles the seqmatch HTTP API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/seqmatch-go/api/handlers"
	"github.com/aria-lang/seqmatch-go/api/middleware"
	"github.com/aria-lang/seqmatch-go/internal/alignment"
	"github.com/aria-lang/seqmatch-go/internal/config"
	"github.com/aria-lang/seqmatch-go/pkg/logger"
)

// NewRouter returns the API routes with their middleware.
func NewRouter(cfg *config.Config, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.Server.RequestTimeout))
	if cfg.Server.MaxBodyBytes > 0 {
		r.Use(chimiddleware.RequestSize(cfg.Server.MaxBodyBytes))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/match", handlers.MatchHandler(*cfg))
		r.Post("/distance", handlers.DistanceHandler)
		r.Post("/cigar", handlers.CigarHandler)

		r.Route("/alignment", func(r chi.Router) {
			r.Post("/global", handlers.AlignHandler(alignment.Global, cfg.Scoring))
			r.Post("/local", handlers.AlignHandler(alignment.Local, cfg.Scoring))
		})

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/complement", handlers.ComplementHandler)
			r.Post("/reverse-complement", handlers.ReverseComplementHandler)
		})
	})

	return r
}
