package routes

import (
	"github.com/gin-gonic/gin"

	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
)

// RegisterAssetRoutes mounts asset creation and the inline field edits.
func RegisterAssetRoutes(api *gin.RouterGroup, h *handlers.AssetHandler, session *middleware.SessionMiddleware) {
	api.GET("/categories", h.Categories)

	assets := api.Group("/assets")
	{
		assets.POST("", session.RequireEditor(), h.Create)
		assets.PATCH("/:id/serial", session.RequireEditor(), h.UpdateSerial)
		assets.PATCH("/:id", session.RequireEditor(), h.Update)
	}
}
