/*
server.go - HTTP router and middleware configuration

ROUTER: chi, with the standard middleware stack:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for calculator frontends

ROUTE GROUPS:
  /api/tvm/*        The nine TVM operations
  /api/loans/*      Amortization schedules
  /api/history      Calculation history
  /api/examples     Worked examples

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/tvm", func(r chi.Router) {
			r.Post("/pv", h.CalcPV)
			r.Post("/fv", h.CalcFV)
			r.Post("/pmt", h.CalcPMT)
			r.Post("/nper", h.CalcNPER)
			r.Post("/ipmt", h.CalcIPMT)
			r.Post("/ppmt", h.CalcPPMT)
			r.Post("/npv", h.CalcNPV)
			r.Post("/irr", h.CalcIRR)
			r.Post("/rate", h.CalcRATE)
		})

		r.Post("/loans/schedule", h.LoanSchedule)
		r.Get("/history", h.GetHistory)
		r.Get("/examples", h.ListExamples)
	})

	return r
}
