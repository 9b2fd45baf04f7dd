package routes

import (
	"github.com/gin-gonic/gin"

	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
)

// RegisterAdminRoutes mounts user administration behind the ADMIN gate.
func RegisterAdminRoutes(api *gin.RouterGroup, h *handlers.AdminHandler, session *middleware.SessionMiddleware) {
	admin := api.Group("/admin", session.RequireAdmin())
	{
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/users/:id/role", h.UpdateRole)
	}
}
