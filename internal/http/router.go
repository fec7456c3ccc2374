package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"truyen/backend/internal/handler"
	"truyen/backend/internal/service"
)

// NewRouter assembles the echo instance: global middleware, the public
// /api group, and the admin-gated mutation routes.
func NewRouter(
	viewHandler *handler.ViewHandler,
	commentHandler *handler.CommentHandler,
	mangaHandler *handler.MangaHandler,
	chapterHandler *handler.ChapterHandler,
	tagHandler *handler.TagHandler,
	authHandler *handler.AuthHandler,
	authService service.AuthService,
	allowOrigins []string,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAuthorization,
			"X-Client-Info",
			"Apikey",
		},
	}))

	api := e.Group("/api")
	viewHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)
	mangaHandler.RegisterRoutes(api)
	chapterHandler.RegisterRoutes(api)
	tagHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	admin := e.Group("/api", JWTAuthMiddleware(authService), AdminOnly(authService))
	commentHandler.RegisterAdminRoutes(admin)
	mangaHandler.RegisterAdminRoutes(admin)
	chapterHandler.RegisterAdminRoutes(admin)
	tagHandler.RegisterAdminRoutes(admin)

	registerStatic(e, staticDir)

	return e
}
