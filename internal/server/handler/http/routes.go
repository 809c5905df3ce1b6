// Package http provides HTTP routing and middleware configuration
// for the itemdash service.
package http

import (
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/avyukov/itemdash/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs and returns an HTTP handler that serves the itemdash
// API. It applies request logging and wide-open CORS, and mounts the
// authentication and item-collection endpoints.
//
// Routes:
//
//	POST /register              → authHandler.Register
//	POST /login                 → authHandler.Login
//	GET  /api/items             → itemHandler.List
//	POST /api/items             → itemHandler.Create
//	PUT  /api/items/{id}        → itemHandler.Update
//	DELETE /api/items/{id}      → itemHandler.Delete
//	GET  /api/me                → authHandler.Me (protected by JWTAuth)
//
// The item endpoints are unauthenticated; only /api/me requires a Bearer
// token signed with jwtSecret.
func NewRouter(
	authHandler *AuthHandler,
	itemHandler *ItemHandler,
	jwtSecret []byte,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public auth endpoints
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", itemHandler.List)
		r.Post("/items", itemHandler.Create)
		r.Put("/items/{id}", itemHandler.Update)
		r.Delete("/items/{id}", itemHandler.Delete)

		// Protected group: requires a valid session token
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(jwtSecret))
			r.Get("/me", authHandler.Me)
		})
	})

	// The SPA is served from a different origin
	return cors.AllowAll().Handler(r)
}
