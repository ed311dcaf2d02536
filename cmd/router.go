package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/techlinker/internal/handlers"
	"github.com/sbilibin2017/techlinker/internal/middlewares"
	"github.com/sbilibin2017/techlinker/internal/services"
)

// routerDeps are the collaborators the HTTP routes are built from.
type routerDeps struct {
	db         *sqlx.DB
	tokener    middlewares.Tokener
	health     handlers.HealthChecker
	auth       *services.AuthService
	profile    *services.ProfileService
	onboarding *services.OnboardingService
}

// newRouter mounts every route under /api.
func newRouter(cfg *config, deps routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMiddleware := middlewares.AuthMiddleware(deps.tokener)
	txMiddleware := middlewares.TxMiddleware(deps.db)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.NewHealthHandler(deps.health))
		r.Get("/skills", handlers.NewListSkillsHandler(deps.profile))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(deps.auth))
			r.Post("/login", handlers.NewLoginHandler(deps.auth))
			r.Post("/send-verification", handlers.NewSendVerificationHandler(deps.auth))
			r.Post("/verify-email", handlers.NewVerifyEmailHandler(deps.auth))
			r.Get("/verification-status/{id}", handlers.NewVerificationStatusHandler(deps.auth))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(deps.auth))
			r.Get("/verify-reset-token", handlers.NewVerifyResetTokenHandler(deps.auth))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(deps.auth))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/profile/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetProfileHandler(deps.profile))
				r.Put("/", handlers.NewUpdateProfileHandler(deps.profile))
				r.With(txMiddleware).Post("/skills", handlers.NewAddSkillHandler(deps.profile))
				r.Delete("/skills/{skillId}", handlers.NewRemoveSkillHandler(deps.profile))
				r.Post("/picture", handlers.NewPictureUploadHandler(deps.profile))
			})

			r.Route("/onboarding/{id}", func(r chi.Router) {
				r.Get("/status", handlers.NewOnboardingStatusHandler(deps.onboarding))
				r.Get("/data", handlers.NewOnboardingDataHandler(deps.onboarding))
				r.Post("/basic-info", handlers.NewBasicInfoHandler(deps.onboarding))
				r.Post("/personal-details", handlers.NewPersonalDetailsHandler(deps.onboarding))
				r.With(txMiddleware).Post("/skills", handlers.NewOnboardingSkillsHandler(deps.onboarding))
				r.Post("/complete", handlers.NewCompleteOnboardingHandler(deps.onboarding))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
