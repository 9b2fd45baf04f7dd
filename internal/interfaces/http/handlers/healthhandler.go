package handlers

import (
	"github.com/gin-gonic/gin"

	"masttrack/internal/shared/utils"
	"masttrack/internal/shared/version"
)

// HealthHandler reports process liveness.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.OKResponse(c, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}
