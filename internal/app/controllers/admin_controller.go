package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/services"
	"github.com/sicproject/backend/internal/middleware"
	"github.com/sicproject/backend/internal/pkg/apperrors"
)

// AdminController handles the administrative endpoints: roster writes,
// marks intake, bulk attendance, reports, logs, users and notify.
type AdminController struct {
	adminService   services.AdminService
	uploadService  services.UploadService
	gatewayService services.GatewayService
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, uploadService services.UploadService, gatewayService services.GatewayService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService:   adminService,
		uploadService:  uploadService,
		gatewayService: gatewayService,
		logger:         logger,
	}
}

// AddStudent handles POST /api/admin/student/add.
func (c *AdminController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid add student payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "id and name are required")))
		return
	}

	if err := c.adminService.AddStudent(ctx.Request.Context(), &req, requestMeta(ctx, "admin")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddStudentResponse{Status: "added", ID: req.ID})
}

// EditStudent handles PUT /api/admin/student/edit/:id with an open field
// map body, filtered to the writable column set.
func (c *AdminController) EditStudent(ctx *gin.Context) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "request body must be a JSON object")))
		return
	}

	changes, err := c.adminService.EditStudent(ctx.Request.Context(), ctx.Param("id"), fields, requestMeta(ctx, "admin"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateResponse{Status: "updated", Changes: changes})
}

// DeleteStudent handles DELETE /api/admin/student/:id. Dependent records
// survive the delete.
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.adminService.DeleteStudent(ctx.Request.Context(), id, requestMeta(ctx, "admin")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{Status: "deleted", ID: id})
}

// UploadMarks handles POST /api/admin/marks/upload. The normalizer
// output rides back in the response even when normalization failed.
func (c *AdminController) UploadMarks(ctx *gin.Context) {
	file, err := ctx.FormFile("csv")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoFile)
		return
	}

	_, output, err := c.uploadService.SaveMarksCSV(ctx.Request.Context(), file, requestMeta(ctx, "admin"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{Status: "uploaded", Output: output})
}

// BulkAttendance handles POST /api/admin/attendance/bulk. The count in
// the response is the number of students the write was attempted for.
func (c *AdminController) BulkAttendance(ctx *gin.Context) {
	var req dto.BulkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid bulk attendance payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "date, subject_id and status are required")))
		return
	}

	count, err := c.adminService.BulkAttendance(ctx.Request.Context(), &req, requestMeta(ctx, "admin"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "applied", "count": count})
}

// Reports handles GET /api/admin/reports/all.
func (c *AdminController) Reports(ctx *gin.Context) {
	report, err := c.adminService.Report(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// Logs handles GET /api/admin/logs.
func (c *AdminController) Logs(ctx *gin.Context) {
	entries, err := c.adminService.Logs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// Users handles GET /api/admin/users. The rows include the stored
// plaintext passwords.
func (c *AdminController) Users(ctx *gin.Context) {
	users, err := c.adminService.Users(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// Notify handles POST /api/admin/notify.
func (c *AdminController) Notify(ctx *gin.Context) {
	var req dto.NotifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "to is required")))
		return
	}

	if err := c.gatewayService.Notify(ctx.Request.Context(), &req, requestMeta(ctx, "admin")); err != nil {
		c.logger.Warn().Err(err).Str("to", req.To).Msg("Notification delivery failed")
		ctx.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "sent"})
}
