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

// StudentController handles the student record endpoints. None of them
// require authentication; the id in the path is taken at face value.
type StudentController struct {
	studentService  services.StudentService
	academicService services.AcademicService
	uploadService   services.UploadService
	logger          zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, academicService services.AcademicService, uploadService services.UploadService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService:  studentService,
		academicService: academicService,
		uploadService:   uploadService,
		logger:          logger,
	}
}

// List handles GET /api/students.
func (c *StudentController) List(ctx *gin.Context) {
	summaries, err := c.studentService.ListSummaries(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summaries)
}

// Profile handles GET /api/student/profile/:id. A miss answers an empty
// object with status 200, not an error.
func (c *StudentController) Profile(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if student == nil {
		ctx.JSON(http.StatusOK, gin.H{})
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// UpdateProfile handles PUT /api/student/profile/:id. The body is an
// open field map; everything outside the writable column set is dropped.
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var fields map[string]interface{}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "request body must be a JSON object")))
		return
	}

	id := ctx.Param("id")
	changes, err := c.studentService.Update(ctx.Request.Context(), id, fields, requestMeta(ctx, "admin"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateResponse{Status: "updated", Changes: changes})
}

// Marks handles GET /api/student/marks/:id.
func (c *StudentController) Marks(ctx *gin.Context) {
	marks, err := c.academicService.Marks(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, marks)
}

// Attendance handles GET /api/student/attendance/:id.
func (c *StudentController) Attendance(ctx *gin.Context) {
	records, err := c.academicService.Attendance(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// Fees handles GET /api/student/fees/:id.
func (c *StudentController) Fees(ctx *gin.Context) {
	fees, err := c.academicService.Fees(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fees)
}

// Search handles POST /api/student/search. An empty query matches every
// student.
func (c *StudentController) Search(ctx *gin.Context) {
	var req dto.SearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "request body must be a JSON object")))
		return
	}

	refs, err := c.studentService.Search(ctx.Request.Context(), req.Query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, refs)
}

// UploadPhoto handles POST /api/student/upload-photo. The file keeps its
// original name inside the storage root; type and size are not checked.
func (c *StudentController) UploadPhoto(ctx *gin.Context) {
	file, err := ctx.FormFile("photo")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrNoFile)
		return
	}

	studentID := ctx.PostForm("student_id")
	name, err := c.uploadService.SavePhoto(ctx.Request.Context(), studentID, file, requestMeta(ctx, studentID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{Status: "uploaded", Path: "/uploads/" + name})
}
