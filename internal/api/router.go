package api

import (
	"net/http"
	"time"

	"canonforces/internal/api/handler"
	"canonforces/internal/api/middleware"
	"canonforces/internal/app/service"
	"canonforces/internal/common/security"
	"canonforces/internal/domain/repository"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	signupService *service.SignupService,
	contestService *service.ContestService,
	userRepo repository.UserRecordRepository,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the session token when present, puts claims in context.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		signupHandler := handler.NewSignupHandler(signupService)
		v1.Route("/auth", signupHandler.RegisterRoutes)

		// Contest feed (public)
		contestHandler := handler.NewContestHandler(contestService)
		v1.Route("/contests", contestHandler.RegisterRoutes)

		// Authenticated routes
		userHandler := handler.NewUserHandler(userRepo)
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.Authenticator)
			userHandler.RegisterRoutes(authed)
		})
	})

	return r
}
