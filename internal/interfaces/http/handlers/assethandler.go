package handlers

import (
	"github.com/gin-gonic/gin"

	assetapp "masttrack/internal/application/asset"
	"masttrack/internal/domain/asset"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils"
)

// AssetHandler serves asset creation and the inline field edits.
type AssetHandler struct {
	assets *assetapp.Service
	logger logger.Interface
}

func NewAssetHandler(assets *assetapp.Service, log logger.Interface) *AssetHandler {
	return &AssetHandler{assets: assets, logger: log}
}

func (h *AssetHandler) Create(c *gin.Context) {
	var input assetapp.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.assets.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

// Categories returns the equipment taxonomy with nested subcategories.
func (h *AssetHandler) Categories(c *gin.Context) {
	cats, err := h.assets.ListCategories(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, cats)
}

type updateSerialRequest struct {
	Serial *string `json:"serial"`
}

func (h *AssetHandler) UpdateSerial(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateSerialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}

	updated, err := h.assets.UpdateSerial(c.Request.Context(), id, req.Serial)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

// updateAssetRequest distinguishes "clear" from "untouched" for the nullable
// fields via the Set flags; a bare pointer set also counts as touched.
type updateAssetRequest struct {
	SerialNumber    *string `json:"serialNumber"`
	SetSerialNumber bool    `json:"setSerialNumber"`
	Manufacturer    *string `json:"manufacturer"`
	SetManufacturer bool    `json:"setManufacturer"`
	Model           *string `json:"model"`
	SetModel        bool    `json:"setModel"`
	PartNumber      *string `json:"partNumber"`
	SetPartNumber   bool    `json:"setPartNumber"`
	Status          *string `json:"status" validate:"omitempty,oneof=ACTIVE FAULTY DECOMMISSIONED"`
}

func (h *AssetHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	update := asset.FieldUpdate{
		SerialNumber:    req.SerialNumber,
		SetSerialNumber: req.SetSerialNumber || req.SerialNumber != nil,
		Manufacturer:    req.Manufacturer,
		SetManufacturer: req.SetManufacturer || req.Manufacturer != nil,
		Model:           req.Model,
		SetModel:        req.SetModel || req.Model != nil,
		PartNumber:      req.PartNumber,
		SetPartNumber:   req.SetPartNumber || req.PartNumber != nil,
	}
	if req.Status != nil {
		st := asset.Status(*req.Status)
		update.Status = &st
	}

	updated, err := h.assets.UpdateFields(c.Request.Context(), id, update)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}
