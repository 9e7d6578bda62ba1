package rest

import (
	"net/http"

	"kbju-backend/application/services"
	"kbju-backend/infrastructure/config"
	"kbju-backend/interfaces/http/rest/handlers"
	"kbju-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "0.1.0"

// Router creates and configures the HTTP router
type Router struct {
	meals  *services.MealService
	cfg    *config.Config
	logger *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(meals *services.MealService, cfg *config.Config, logger *zap.Logger) *Router {
	return &Router{
		meals:  meals,
		cfg:    cfg,
		logger: logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	router.Use(middleware.Metrics())

	// TODO: restrict origins to the CloudFront domain in production
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Service identity and liveness
	router.Get("/", rt.root)
	router.Get("/health", rt.healthCheck)
	router.Handle("/metrics", promhttp.Handler())

	// API routes
	router.Route("/api", func(r chi.Router) {
		mealHandler := handlers.NewMealHandler(rt.meals, rt.logger)
		r.Post("/meals", mealHandler.CreateMeal)
		r.Get("/meals/{userID}", mealHandler.ListMeals)
		r.Get("/stats/{userID}/today", mealHandler.TodayStats)
	})

	return router
}

// root handles service identity requests
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"KBJU API","version":"` + APIVersion + `"}`))
}

// healthCheck handles liveness probe requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
