package handlers

import (
	"github.com/gin-gonic/gin"

	exportapp "masttrack/internal/application/export"
	storeapp "masttrack/internal/application/store"
	"masttrack/internal/domain/store"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils"
)

// StoreHandler serves the spare-parts ledger.
type StoreHandler struct {
	items   *storeapp.Service
	exports *exportapp.Service
	logger  logger.Interface
}

func NewStoreHandler(items *storeapp.Service, exports *exportapp.Service, log logger.Interface) *StoreHandler {
	return &StoreHandler{items: items, exports: exports, logger: log}
}

func (h *StoreHandler) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context(),
		c.Query("q"), store.Status(c.Query("status")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, items)
}

func (h *StoreHandler) Create(c *gin.Context) {
	var input storeapp.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.items.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

type updateItemStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=RECEIVED NOT_RECEIVED"`
}

func (h *StoreHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "store item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.items.UpdateStatus(c.Request.Context(), id, store.Status(req.Status))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "store item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.items.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Export streams the ledger as a CSV attachment.
func (h *StoreHandler) Export(c *gin.Context) {
	doc, err := h.exports.Store(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	writeCSV(c, doc)
}
