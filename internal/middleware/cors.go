// Package middleware provides reusable HTTP middleware for the PackPal API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler builds the CORS middleware for the configured origins.
// Origins must be full scheme+host values without a trailing slash. The
// method and header lists cover everything the REST surface uses; preflight
// results may be cached by browsers for up to five minutes.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
