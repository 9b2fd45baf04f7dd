package routes

import (
	"github.com/gin-gonic/gin"

	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
)

// RegisterAuthRoutes mounts the login round-trip and session endpoints.
func RegisterAuthRoutes(engine *gin.Engine, h *handlers.AuthHandler, session *middleware.SessionMiddleware) {
	auth := engine.Group("/auth")
	{
		auth.GET("/login", h.Login)
		auth.GET("/callback", h.Callback)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", session.RequireSession(), h.Me)
	}
}
