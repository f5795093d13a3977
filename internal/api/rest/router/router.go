// Package router wires HTTP handlers and middleware into the chi mux.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/formforge/formforge-server/internal/api/rest/handler"
	"github.com/formforge/formforge-server/internal/api/rest/middleware"
	"github.com/formforge/formforge-server/internal/logger"
	"github.com/formforge/formforge-server/internal/model"
)

// Router assembles the HTTP route tree for the API.
type Router struct {
	authService       middleware.AuthService
	loginService      handler.AuthService
	userService       handler.UserService
	generativeService handler.GenerativeService
	contextManager    model.ContextManager
	allowedOrigins    []string
	logger            *logger.Logger
}

// New creates a new Router instance.
func New(
	authService middleware.AuthService,
	loginService handler.AuthService,
	userService handler.UserService,
	generativeService handler.GenerativeService,
	contextManager model.ContextManager,
	allowedOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:       authService,
		loginService:      loginService,
		userService:       userService,
		generativeService: generativeService,
		contextManager:    contextManager,
		allowedOrigins:    allowedOrigins,
		logger:            logger,
	}
}

// Register builds the route tree. The login and registration endpoints are
// public; everything else under /api/v1 requires a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.loginService, r.contextManager, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	generativeHandler := handler.NewGenerative(r.generativeService, r.logger)
	healthHandler := handler.NewHealth()

	mux := chi.NewRouter()

	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(chimiddleware.Timeout(60 * time.Second))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	mux.Get("/", healthHandler.Check)

	mux.Route("/api/v1", func(api chi.Router) {
		api.Post("/auth/token", authHandler.Token)
		api.Post("/users", userHandler.Create)

		api.Group(func(authed chi.Router) {
			authed.Use(authenticate.Handle)

			authed.Get("/auth/me", authHandler.Me)

			authed.Get("/users", userHandler.GetAll)
			authed.Get("/users/{id}", userHandler.GetByID)
			authed.Patch("/users/{id}", userHandler.Update)
			authed.Delete("/users/{id}", userHandler.Delete)

			authed.Post("/generative/react", generativeHandler.React)
		})
	})

	return mux
}
