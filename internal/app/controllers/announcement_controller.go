package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/services"
	"github.com/sicproject/backend/internal/middleware"
)

// AnnouncementController handles the notice board endpoints.
type AnnouncementController struct {
	announcementService services.AnnouncementService
	logger              zerolog.Logger
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService, logger zerolog.Logger) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
		logger:              logger,
	}
}

// List handles GET /api/announcements.
func (c *AnnouncementController) List(ctx *gin.Context) {
	items, err := c.announcementService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Post handles POST /api/admin/announcements.
func (c *AnnouncementController) Post(ctx *gin.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "title and content are required")))
		return
	}

	id, err := c.announcementService.Post(ctx.Request.Context(), &req, requestMeta(ctx, req.PostedBy))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "posted", ID: id})
}
