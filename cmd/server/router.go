package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/agenda-api/internal/api"
	apiMiddleware "github.com/phrazzld/agenda-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.CORS(app.config.Server.CORSAllowedOrigins))

	contactHandler := api.NewContactHandler(app.contactService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware.RateLimit(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst))

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.CreateContact)
			r.Get("/", contactHandler.ListContacts)
			r.Get("/{id}", contactHandler.GetContact)
			r.Put("/{id}", contactHandler.UpdateContact)
			r.Delete("/{id}", contactHandler.DeleteContact)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", taskHandler.CreateTask)
			r.Get("/", taskHandler.ListTasks)
			r.Put("/{id}/complete", taskHandler.CompleteTask)
			r.Delete("/{id}", taskHandler.DeleteTask)
		})
	})

	// Health check stays outside the rate limit
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
