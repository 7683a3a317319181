package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"neuralink-backend/internal/consultations"
	"neuralink-backend/internal/metrics"
	"neuralink-backend/internal/middleware"
)

type RouterDeps struct {
	Server        *Server
	Consultations *consultations.Handler
	Limiter       *middleware.RateLimiter
	Metrics       *metrics.Metrics
	CORSOrigins   []string

	// TrustedProxyHops is how many reverse proxies sit in front of the
	// server; zero keys clients by socket address.
	TrustedProxyHops int
}

// NewRouter builds the full route table. Any method/path pair not listed
// here, including a known path with the wrong method, gets the fixed 404 body.
func NewRouter(d RouterDeps) http.Handler {
	s := d.Server

	r := chi.NewRouter()
	r.Use(middleware.ClientAddr(d.TrustedProxyHops))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(s.Log))
	r.Use(middleware.Recoverer(s.Log))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(d.CORSOrigins))
	r.Use(chiMiddleware.StripSlashes)
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.NotFound)

	r.Route("/api", func(api chi.Router) {
		if d.Limiter != nil {
			api.Use(d.Limiter.Middleware)
		}
		api.NotFound(s.NotFound)
		api.MethodNotAllowed(s.NotFound)

		api.Get("/", s.GetAPIInfo)
		api.Get("/health", s.GetHealth)

		api.Get("/services", s.ListServices)
		api.Get("/services/{id}", s.GetService)

		api.Get("/team", s.ListTeam)
		api.Get("/team/expertise/{skill}", s.FindTeamByExpertise)
		api.Get("/team/{id}", s.GetTeamMember)

		api.Get("/contact", s.GetContactInfo)
		api.Post("/contact/consultation", d.Consultations.Create)
		api.Get("/contact/consultation-requests", d.Consultations.List)
		api.Get("/contact/consultation-requests/{id}", d.Consultations.GetByID)
	})

	return r
}
