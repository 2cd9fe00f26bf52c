package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "promptcraft/backend/docs"
	"promptcraft/backend/internal/handler"
	"promptcraft/backend/internal/service"
)

const maxBodySize = "1M"

func NewRouter(
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	folderHandler *handler.FolderHandler,
	promptHandler *handler.PromptHandler,
	tagHandler *handler.TagHandler,
	aiHandler *handler.AIHandler,
	healthHandler *handler.HealthHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("", JWTAuthMiddleware(authService))
	folderHandler.RegisterRoutes(protected)
	promptHandler.RegisterRoutes(protected)
	tagHandler.RegisterRoutes(protected)
	aiHandler.RegisterRoutes(protected)

	registerStatic(e, staticDir)

	return e
}
