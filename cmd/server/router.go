package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"memopad/internal/api"
	apiMiddleware "memopad/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.userService,
		app.jwtService,
		app.passwordVerifier,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	memoHandler := api.NewMemoHandler(app.memoService)
	userHandler := api.NewUserHandler(app.userService)
	attachmentHandler := api.NewAttachmentHandler(app.blobStore)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Post("/password-reset-request", authHandler.RequestPasswordReset)
		r.Post("/password-reset", authHandler.ResetPassword)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Memo endpoints; the static /memos/trash routes take
			// precedence over /memos/{id}
			r.Get("/memos", memoHandler.ListMemos)
			r.Post("/memos", memoHandler.CreateMemo)
			r.Get("/memos/trash", memoHandler.ListTrash)
			r.Delete("/memos/trash", memoHandler.EmptyTrash)
			r.Get("/memos/{id}", memoHandler.GetMemo)
			r.Put("/memos/{id}", memoHandler.UpdateMemo)
			r.Delete("/memos/{id}", memoHandler.DeleteMemo)
			r.Put("/memos/{id}/restore", memoHandler.RestoreMemo)

			// User endpoints
			r.Get("/users/profile", userHandler.GetProfile)

			// Attachment uploads are only offered when object storage
			// is configured
			if app.blobStore.Enabled() {
				r.Post("/attachments/presign", attachmentHandler.PresignUpload)
			}
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
