package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight response.
const corsMaxAge = 86400

// CORS returns middleware allowing cross-origin calls from the comma-separated
// allowedOrigins ("*" allows any origin).
func CORS(allowedOrigins string) func(http.Handler) http.Handler {
	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-Requested-With"},
		ExposedHeaders: []string{TraceIDHeader},
		MaxAge:         corsMaxAge,
	})

	return c.Handler
}
