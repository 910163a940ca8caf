package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/forecast-api/internal/api"
	apiMiddleware "github.com/phrazzld/forecast-api/internal/api/middleware"
	"github.com/phrazzld/forecast-api/internal/domain"
)

// setupRouter creates the router with the gatekeeping pipeline and all
// routes. Recover wraps every stage; the key gate runs before the limiter.
func (app *application) setupRouter() http.Handler {
	supportContact := app.config.Server.SupportContact

	r := chi.NewRouter()

	r.Use(apiMiddleware.Recover(supportContact))
	r.Use(middleware.RequestID)
	if app.config.Server.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.RequestLogger)

	// Health check endpoint, outside the gatekeeping pipeline
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	authHandler := api.NewAuthHandler(app.authService, supportContact)
	forecastHandler := api.NewForecastHandler(app.forecastService, supportContact)
	userHandler := api.NewUserHandler(app.authService, supportContact)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokens)

	r.Group(func(r chi.Router) {
		r.Use(apiMiddleware.APIKey(app.gate))
		r.Use(apiMiddleware.RateLimit(app.limiter, apiMiddleware.ClientIP, app.now, supportContact))

		// Authentication endpoints (no token required). The versioned prefix
		// serves the same handlers.
		authRoutes := func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/token", authHandler.Token)
		}
		r.Route("/authentication", authRoutes)
		r.Route("/v1/authentication", authRoutes)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.With(apiMiddleware.RequireRole(domain.RoleUser, domain.RoleAdmin)).
				Get("/weatherforecast", forecastHandler.List)
			r.With(apiMiddleware.RequireRole(domain.RoleUser, domain.RoleAdmin)).
				Get("/weatherforecast/boom", forecastHandler.Boom)
			r.With(apiMiddleware.RequireRole(domain.RoleAdmin)).
				Post("/admin/weatherforecast", forecastHandler.Create)
			r.With(apiMiddleware.RequireRole(domain.RoleAdmin)).
				Get("/admin/users/{username}/social-security-number", userHandler.RevealSSN)
		})
	})

	return r
}
