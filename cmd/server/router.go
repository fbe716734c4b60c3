package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/studious/internal/api"
	apiMiddleware "github.com/phrazzld/studious/internal/api/middleware"
	"github.com/phrazzld/studious/internal/api/shared"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	authHandler := api.NewAuthHandler(app.credentials, app.jwtService, &app.config.Auth, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	studyHandler := api.NewStudyHandler(app.collection, app.logger)
	noteHandler := api.NewNoteHandler(app.notes, app.logger)
	timerHandler := api.NewTimerHandler(app.countdown, app.logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/signin", authHandler.SignIn)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/study", func(r chi.Router) {
				r.Get("/", studyHandler.Get)
				r.Get("/sets", studyHandler.ListSets)
				r.Post("/sets", studyHandler.AddSet)
				r.Delete("/sets/current", studyHandler.DeleteSet)
				r.Post("/sets/next", studyHandler.NextSet)
				r.Post("/sets/prev", studyHandler.PrevSet)
				r.Post("/cards", studyHandler.AddCard)
				r.Post("/cards/next", studyHandler.NextCard)
				r.Post("/cards/flip", studyHandler.Flip)
				r.Delete("/cards/current", studyHandler.DeleteCard)
				r.Post("/cards/current/edit", studyHandler.StartEdit)
				r.Put("/cards/current/edit", studyHandler.SaveEdit)
				r.Delete("/cards/current/edit", studyHandler.CancelEdit)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", noteHandler.List)
				r.Post("/", noteHandler.Create)
				r.Get("/{id}", noteHandler.Get)
				r.Patch("/{id}", noteHandler.Update)
				r.Delete("/{id}", noteHandler.Delete)
				r.Post("/{id}/template", noteHandler.ApplyTemplate)
			})

			r.Route("/timer", func(r chi.Router) {
				r.Get("/", timerHandler.Get)
				r.Put("/", timerHandler.SetDuration)
				r.Post("/start", timerHandler.Start)
				r.Post("/pause", timerHandler.Pause)
				r.Post("/toggle", timerHandler.Toggle)
				r.Post("/reset", timerHandler.Reset)
			})
		})
	})

	return r
}
