package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pinpin/travel-backend/internal/api/handlers"
	"github.com/pinpin/travel-backend/internal/api/middleware"
	"github.com/pinpin/travel-backend/internal/config"
	"github.com/pinpin/travel-backend/internal/repository"
	"github.com/pinpin/travel-backend/internal/service"
	"github.com/pinpin/travel-backend/internal/token"
)

func NewRouter(services *service.Services, repos *repository.Repositories, issuer *token.Issuer, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.Account, cfg)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	avatarHandler := handlers.NewAvatarHandler(services.Avatar)
	categoryHandler := handlers.NewCategoryHandler(services.Category)
	placesHandler := handlers.NewPlacesHandler(services.Place)
	weatherHandler := handlers.NewWeatherHandler(services.Weather)

	session := middleware.Session(issuer, repos.Account, cfg.CookieName)

	r.Route("/api", func(r chi.Router) {
		// Public account routes
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Get("/logout", userHandler.Logout)

			// Protected account routes
			r.Group(func(r chi.Router) {
				r.Use(session)
				r.Get("/check", userHandler.Check)
				r.Patch("/account", userHandler.UpdateAccount)
			})
		})

		// Profile routes
		r.Route("/users", func(r chi.Router) {
			r.Use(session)
			r.Get("/profile", profileHandler.GetProfile)
			r.Post("/updateUserProfile", profileHandler.UpdateProfile)
			r.Post("/updateAvatar", profileHandler.UpdateAvatar)
			r.Get("/avatarHistory", profileHandler.GetAvatarHistory)
		})

		// Avatar catalogue routes
		r.Route("/avatar", func(r chi.Router) {
			r.Get("/defaults", avatarHandler.Defaults)

			r.Group(func(r chi.Router) {
				r.Use(session)
				r.Post("/upload", avatarHandler.Upload)
				r.Get("/mine", avatarHandler.Mine)
			})
		})

		// Taxonomy reference data
		r.Route("/category", func(r chi.Router) {
			r.Get("/countries", categoryHandler.Countries)
		})

		// Location search routes
		r.Route("/searchLocation", func(r chi.Router) {
			r.Use(session)
			r.Get("/textSearch", placesHandler.TextSearch)
			r.Get("/autocomplete", placesHandler.Autocomplete)
		})

		// Weather routes
		r.Route("/weather", func(r chi.Router) {
			r.Use(session)
			r.Get("/current", weatherHandler.Current)
		})
	})

	return r
}
