package handlers

import (
	"github.com/gin-gonic/gin"

	userapp "masttrack/internal/application/user"
	"masttrack/internal/interfaces/http/middleware"
	"masttrack/internal/shared/authorization"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils"
)

// AdminHandler serves the user administration endpoints.
type AdminHandler struct {
	users  *userapp.Service
	logger logger.Interface
}

func NewAdminHandler(users *userapp.Service, log logger.Interface) *AdminHandler {
	return &AdminHandler{users: users, logger: log}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	profiles, err := h.users.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, profiles)
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN EDITOR VIEWER"`
}

func (h *AdminHandler) UpdateRole(c *gin.Context) {
	targetID := c.Param("id")
	if targetID == "" {
		utils.ErrorResponse(c, 400, "missing user id")
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.users.UpdateRole(c.Request.Context(),
		middleware.UserID(c), targetID, authorization.ParseRole(req.Role))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}
