package routes

import (
	"github.com/gin-gonic/gin"

	"masttrack/internal/interfaces/http/handlers"
	"masttrack/internal/interfaces/http/middleware"
)

// RegisterSiteRoutes mounts the site endpoints on the session-gated API group.
func RegisterSiteRoutes(api *gin.RouterGroup, h *handlers.SiteHandler, session *middleware.SessionMiddleware) {
	sites := api.Group("/sites")
	{
		sites.GET("", h.List)
		sites.GET("/export", h.ExportAll)
		sites.GET("/:id", h.Get)
		sites.GET("/:id/assets", h.Assets)
		sites.GET("/:id/transmitter", h.Transmitter)
		sites.GET("/:id/rack", h.Rack)
		sites.GET("/:id/export", h.Export)

		sites.POST("", session.RequireEditor(), h.Create)
		sites.PATCH("/:id/status", session.RequireEditor(), h.UpdateStatus)
		sites.PATCH("/:id/meta", session.RequireEditor(), h.UpdateMeta)
		sites.PATCH("/:id/mux-serial", session.RequireEditor(), h.UpdateMuxSerial)
		sites.DELETE("/:id", session.RequireEditor(), h.Delete)
	}
}
