package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/infrastructure/config"
	"socialnet-backend/interfaces/http/rest/handlers"
	"socialnet-backend/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router
type Router struct {
	service *services.NetworkService
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(service *services.NetworkService, cfg *config.Config, logger *zap.Logger) *Router {
	return &Router{
		service: service,
		cfg:     cfg,
		logger:  logger,
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

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		// Person endpoints
		r.Route("/people", func(r chi.Router) {
			personHandler := handlers.NewPersonHandler(rt.service, rt.logger)
			r.Post("/", personHandler.CreatePerson)
			r.Get("/", personHandler.ListPeople)
			r.Delete("/{name}", personHandler.DeletePerson)
			r.Get("/{name}/friends", personHandler.GetFriends)
			r.Get("/{name}/recommendations", personHandler.GetRecommendations)
		})

		// Friendship endpoints
		friendshipHandler := handlers.NewFriendshipHandler(rt.service, rt.logger)
		r.Route("/friendships", func(r chi.Router) {
			r.Post("/", friendshipHandler.CreateFriendship)
			r.Delete("/", friendshipHandler.DeleteFriendship)
			r.Get("/", friendshipHandler.ListFriendships)
		})
		r.Get("/connections", friendshipHandler.CheckConnection)

		// Path search
		r.Get("/paths", handlers.NewPathHandler(rt.service, rt.logger).GetShortestPath)

		// Whole-network operations
		networkHandler := handlers.NewNetworkHandler(rt.service, rt.cfg.DataFile, rt.logger)
		r.Route("/network", func(r chi.Router) {
			r.Get("/", networkHandler.GetStats)
			r.Post("/load", networkHandler.Load)
			r.Post("/save", networkHandler.Save)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
