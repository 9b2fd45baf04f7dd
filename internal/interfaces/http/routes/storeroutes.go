package routes

import (
	"github.com/gin-gonic/gin"

	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
)

// RegisterStoreRoutes mounts the spare-parts ledger endpoints.
func RegisterStoreRoutes(api *gin.RouterGroup, h *handlers.StoreHandler, session *middleware.SessionMiddleware) {
	store := api.Group("/store")
	{
		store.GET("", h.List)
		store.GET("/export", h.Export)

		store.POST("", session.RequireEditor(), h.Create)
		store.PATCH("/:id/status", session.RequireEditor(), h.UpdateStatus)
		store.DELETE("/:id", session.RequireEditor(), h.Delete)
	}
}
