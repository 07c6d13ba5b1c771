package main

import (
	"github.com/labstack/echo/v4"

	"questboard/internal/infrastructure/httpserver"
	"questboard/internal/middleware"
)

// SetupRoutes configures all API routes and middleware chains.
func SetupRoutes(c *Container) *httpserver.Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	routerConfig := httpserver.RouterConfig{
		Logger: c.Logger,
		AuthMiddleware: middleware.Auth(middleware.AuthConfig{
			Verifier: c.TokenManager,
			Sessions: c.Sessions,
			Logger:   c.Logger,
		}),
		CORSConfig:     middleware.DefaultCORSConfig(),
		LoggingConfig:  middleware.DefaultLoggingConfig(),
		RecoveryConfig: middleware.DefaultRecoveryConfig(),
		APIPrefix:      "/api/v1",
	}

	router := httpserver.NewRouter(e, routerConfig)

	router.RegisterHealthEndpoints(c.Ready)
	router.RegisterMetricsEndpoint()

	router.RegisterAll(
		c.QuestionHandler,
		c.UserHandler,
		c.AuthHandler,
	)

	if c.Config.IsDevelopment() {
		router.PrintRoutes()
	}

	return router
}
