package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/rocket-be/internal/api/handlers"
	"github.com/isdelr/rocket-be/internal/auth"
	"github.com/isdelr/rocket-be/internal/config"
	"github.com/isdelr/rocket-be/internal/logger"
	"github.com/isdelr/rocket-be/internal/services"
	"github.com/isdelr/rocket-be/internal/websocket"
)

// Services bundles the business services the router exposes.
type Services struct {
	Auth     services.AuthServiceProvider
	Users    services.UserServiceProvider
	Messages services.MessageServiceProvider
	Items    services.ItemServiceProvider
}

// NewRouter creates and configures a new Chi router.
func NewRouter(cfg *config.Config, db handlers.Pinger, hub *websocket.Hub, tokens auth.TokenVerifier, svc Services) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", auth.TokenHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireToken := auth.Middleware(tokens)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(svc.Auth, svc.Users)
	userHandler := handlers.NewUserHandler(svc.Users, svc.Auth)
	itemHandler := handlers.NewItemHandler(svc.Items)
	messageHandler := handlers.NewMessageHandler(svc.Messages, svc.Users, hub, cfg.ContextUser)
	wsHandler := handlers.NewWebSocketHandler(hub, cfg.CORSAllowedOrigins)

	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/", authHandler.Login)
			r.With(requireToken).Get("/user", authHandler.GetMe)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Register)
			r.Group(func(r chi.Router) {
				r.Use(requireToken)
				r.Get("/", userHandler.GetAll)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Use(requireToken)
			r.Get("/", itemHandler.GetAll)
			r.Post("/", itemHandler.Create)
			r.Get("/{id}", itemHandler.Get)
			r.Delete("/{id}", itemHandler.Delete)
		})

		// Messages are open and authored by the configured context user.
		r.Route("/messages", func(r chi.Router) {
			r.Get("/ws", wsHandler.Serve)
			r.Get("/", messageHandler.GetAll)
			r.Post("/", messageHandler.Create)
			r.Get("/{id}", messageHandler.Get)
			r.Delete("/{id}", messageHandler.Delete)
		})
	})

	return r
}
