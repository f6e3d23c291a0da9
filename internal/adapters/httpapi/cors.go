package httpapi

import (
	"net/http"

	"github.com/rs/cors"
)

// newCORSHandler applies CORS headers based on allowedOrigins. Each entry must
// be a full origin (scheme + host, no trailing slash). Allowed methods and
// headers cover the full REST surface of the API.
func newCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
