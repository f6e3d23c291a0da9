package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RouterOptions configures the middleware applied around the handlers.
type RouterOptions struct {
	// AuthMiddleware guards every /v1 route except login and signup.
	AuthMiddleware func(http.Handler) http.Handler

	// CORSOrigins, when non-empty, enables CORS for the listed origins.
	CORSOrigins []string

	// Logger, when set, logs one line per request.
	Logger *zerolog.Logger
}

// NewRouter constructs the API HTTP router.
//
// This is intentionally a thin adapter: it wires routes and middleware and
// delegates everything else to the Server's handlers.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.Logger != nil {
		r.Use(newRequestLogger(opts.Logger))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(newCORSHandler(opts.CORSOrigins))
	}

	// Health endpoint is unauthenticated (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/signup", s.handleSignup)

		r.Group(func(r chi.Router) {
			if opts.AuthMiddleware != nil {
				r.Use(opts.AuthMiddleware)
			}

			r.Post("/auth/logout", s.handleLogout)
			r.Get("/auth/session", s.handleAuthSession)

			r.Get("/explore/posts", s.handleListPosts)
			r.Post("/explore/posts/{postID}/like", s.handleToggleLike)

			r.Get("/places/properties", s.handleListProperties)
			r.Post("/places/properties", s.handleAddProperty)
			r.Get("/places/properties/{propertyID}", s.handleGetProperty)
			r.Post("/places/properties/{propertyID}/favorite", s.handleToggleFavorite)
			r.Delete("/places/selection", s.handleClearSelection)

			r.Post("/ai/itinerary", s.handleGenerateItinerary)
			r.Delete("/ai/itinerary", s.handleClearItinerary)

			r.Get("/profile/stats", s.handleProfileStats)
		})
	})

	return r
}
