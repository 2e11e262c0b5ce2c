package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vocabcoach/internal/api"
	apiMiddleware "vocabcoach/internal/api/middleware"
)

// setupRouter configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	wordHandler := api.NewWordHandler(app.vocabulary, app.logger)
	practiceHandler := api.NewPracticeHandler(app.practiceService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewSessions, app.vocabulary, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Vocabulary management
		r.Post("/words", wordHandler.CreateWord)
		r.Get("/words", wordHandler.ListWords)
		r.Get("/words/{id}", wordHandler.GetWord)
		r.Delete("/words/{id}", wordHandler.DeleteWord)

		// Sentence practice
		r.Post("/practice", practiceHandler.SubmitSentence)
		r.Get("/practice/history", practiceHandler.GetHistory)

		// Flashcard review sessions
		r.Post("/review/sessions", reviewHandler.StartSession)
		r.Get("/review/sessions/{id}/card", reviewHandler.GetCard)
		r.Post("/review/sessions/{id}/flip", reviewHandler.FlipCard)
		r.Post("/review/sessions/{id}/next", reviewHandler.NextCard)
		r.Post("/review/sessions/{id}/mode", reviewHandler.SetMode)
		r.Delete("/review/sessions/{id}", reviewHandler.EndSession)
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
