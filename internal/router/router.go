// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"agenda-api/internal/avatar"
	"agenda-api/internal/cache"
	"agenda-api/internal/database"
	"agenda-api/internal/handler"
	"agenda-api/internal/handler/auth"
	"agenda-api/internal/handler/users"
	"agenda-api/internal/middleware"
)

// Setup registers all routes. Authentication (who are you) is middleware;
// authorization (may you do this) lives in the handlers.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, av *avatar.Fetcher) {
	e.GET("/ping", handler.PingHandler(db, cch), middleware.RequireAuth)

	e.POST("/auth/login", auth.LoginHandler(db, cch))
	e.POST("/auth/refresh", auth.RefreshHandler(db, cch))

	user := e.Group("/user", middleware.RequireAuth)
	user.GET("/index", users.ListUsersHandler(db))
	user.GET("/random-avatar", users.RandomAvatarHandler(av))
	user.POST("", users.CreateUserHandler(db))
	user.GET("/:id", users.GetUserHandler(db))
	user.PATCH("/:id", users.UpdateUserHandler(db))
	user.DELETE("/:id", users.DeleteUserHandler(db))
}
