package handlers

import (
	"github.com/gin-gonic/gin"

	assetapp "masttrack/internal/application/asset"
	exportapp "masttrack/internal/application/export"
	siteapp "masttrack/internal/application/site"
	"masttrack/internal/domain/asset"
	"masttrack/internal/domain/site"
	"masttrack/internal/interfaces/http/middleware"
	"masttrack/internal/shared/logger"
	"masttrack/internal/shared/utils"
)

// SiteHandler serves the site list, detail views and inline edits.
type SiteHandler struct {
	sites   *siteapp.Service
	assets  *assetapp.Service
	exports *exportapp.Service
	logger  logger.Interface
}

func NewSiteHandler(
	sites *siteapp.Service,
	assets *assetapp.Service,
	exports *exportapp.Service,
	log logger.Interface,
) *SiteHandler {
	return &SiteHandler{
		sites:   sites,
		assets:  assets,
		exports: exports,
		logger:  log,
	}
}

func (h *SiteHandler) List(c *gin.Context) {
	filter := site.ListFilter{
		Query:           c.Query("q"),
		TransmitterType: site.TransmitterType(c.Query("tt")),
	}
	if filter.TransmitterType != "" && !filter.TransmitterType.IsValid() {
		utils.ErrorResponse(c, 400, "invalid transmitter type filter")
		return
	}

	sites, err := h.sites.List(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, sites)
}

func (h *SiteHandler) Create(c *gin.Context) {
	var input siteapp.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	created, err := h.sites.Create(c.Request.Context(), input)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, created)
}

func (h *SiteHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	found, err := h.sites.Get(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, found)
}

func (h *SiteHandler) Assets(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assets, err := h.assets.ListSiteAssets(c.Request.Context(), id,
		c.Query("q"), asset.Status(c.Query("status")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, assets)
}

func (h *SiteHandler) Transmitter(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	view, err := h.assets.Transmitter(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, view)
}

func (h *SiteHandler) Rack(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	rows, err := h.assets.Rack(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, rows)
}

type updateSiteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE DOWN"`
}

func (h *SiteHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateSiteStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.sites.UpdateStatus(c.Request.Context(), id,
		site.Status(req.Status), middleware.UserEmail(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

type updateSiteMetaRequest struct {
	TowerType      *string `json:"towerType" validate:"omitempty,oneof=GBC KNET"`
	TowerHeight    *int    `json:"towerHeight"`
	SetTowerHeight bool    `json:"setTowerHeight"`
	GPS            *string `json:"gps"`
	SetGPS         bool    `json:"setGps"`
}

func (h *SiteHandler) UpdateMeta(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateSiteMetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	meta := site.MetaUpdate{
		TowerHeight:    req.TowerHeight,
		SetTowerHeight: req.SetTowerHeight || req.TowerHeight != nil,
		GPS:            req.GPS,
		SetGPS:         req.SetGPS || req.GPS != nil,
	}
	if req.TowerType != nil {
		tt := site.TowerType(*req.TowerType)
		meta.TowerType = &tt
	}

	updated, err := h.sites.UpdateMeta(c.Request.Context(), id, meta)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

type updateMuxSerialRequest struct {
	Mux    string  `json:"mux" validate:"required,oneof=MUX1 MUX2 MUX3"`
	Serial *string `json:"serial"`
}

func (h *SiteHandler) UpdateMuxSerial(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req updateMuxSerialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	updated, err := h.sites.UpdateMuxSerial(c.Request.Context(), id,
		site.MuxKey(req.Mux), req.Serial)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, updated)
}

func (h *SiteHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.sites.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}

// Export streams the site's assets as a CSV attachment.
func (h *SiteHandler) Export(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "site")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	doc, err := h.exports.SiteAssets(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	writeCSV(c, doc)
}

// ExportAll streams the full site list as a CSV attachment.
func (h *SiteHandler) ExportAll(c *gin.Context) {
	doc, err := h.exports.Sites(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	writeCSV(c, doc)
}

func writeCSV(c *gin.Context, doc *exportapp.Document) {
	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(200, "text/csv; charset=utf-8", []byte(doc.Content))
}
