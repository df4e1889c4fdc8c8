// Package server assembles the HTTP surface: middleware, routes, CORS and
// the static frontend, and runs it until the context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/yukikurage/user-hobbies-api/internal/config"
	"github.com/yukikurage/user-hobbies-api/internal/handlers"
	"github.com/yukikurage/user-hobbies-api/internal/metrics"
	"github.com/yukikurage/user-hobbies-api/internal/middleware"
	"github.com/yukikurage/user-hobbies-api/internal/ratelimit"
	"github.com/yukikurage/user-hobbies-api/internal/services"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Dependencies carries everything the router needs. DB and Metrics are optional.
type Dependencies struct {
	Config  *config.Config
	Log     *zap.Logger
	DB      handlers.Pinger
	Users   *services.UserService
	Hobbies *services.HobbyService
	Limiter ratelimit.Store
	Metrics *metrics.HTTP
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	r := gin.New()
	// Route on the raw path so an escaped "/" stays inside a segment. Text
	// parameters are decoded by their handler, once.
	r.UseRawPath = true
	r.UnescapePathValues = false
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	r.Use(
		middleware.Recovery(deps.Log),
		middleware.RequestID(),
		middleware.RequestLogger(deps.Log),
	)
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.BodyLimit(middleware.DefaultBodyLimit))
	// Engine-wide so unmatched /api paths are counted too.
	r.Use(middleware.RateLimit(deps.Limiter, deps.Log, func(c *gin.Context) bool {
		p := c.Request.URL.Path
		return !isAPIPath(p) || p == "/api/health"
	}))

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	userHandler := handlers.NewUserHandler(deps.Users, deps.Log)
	hobbyHandler := handlers.NewHobbyHandler(deps.Hobbies, deps.Log)
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Log)

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/with-hobbies/all", userHandler.ListUsersWithHobbies)
			users.GET("/:userId", userHandler.GetUser)
			users.DELETE("/:userId", userHandler.DeleteUser)
		}

		hobbies := api.Group("/hobbies")
		{
			hobbies.POST("", hobbyHandler.CreateHobby)
			hobbies.GET("/user/:userId", hobbyHandler.ListHobbiesForUser)
			hobbies.DELETE("/:userId/:hobby", hobbyHandler.DeleteHobby)
		}
	}

	r.NoRoute(noRoute(cfg.StaticDir))
	return r, nil
}

// NewHandler wraps the router with CORS handling for the configured origins.
func NewHandler(deps Dependencies) (http.Handler, error) {
	r, err := NewRouter(deps)
	if err != nil {
		return nil, err
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   deps.Config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		AllowCredentials: true,
	})
	return c.Handler(r), nil
}

// Server is the HTTP listener for the API.
type Server struct {
	httpServer *http.Server
	log        *zap.Logger
}

// New creates a Server listening on the configured port.
func New(deps Dependencies) (*Server, error) {
	handler, err := NewHandler(deps)
	if err != nil {
		return nil, err
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + deps.Config.Port,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		log: deps.Log,
	}, nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
