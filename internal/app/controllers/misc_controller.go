package controllers

import (
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/services"
	"github.com/sicproject/backend/internal/middleware"
	"github.com/sicproject/backend/internal/pkg/filestorage"
)

// MiscController handles the endpoints outside any one record domain:
// file retrieval, export fetches, the HTML name search, the uploads
// listing and the API descriptor.
type MiscController struct {
	studentService services.StudentService
	gatewayService services.GatewayService
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewMiscController creates a new MiscController
func NewMiscController(studentService services.StudentService, gatewayService services.GatewayService, storage filestorage.FileStorage, logger zerolog.Logger) *MiscController {
	return &MiscController{
		studentService: studentService,
		gatewayService: gatewayService,
		storage:        storage,
		logger:         logger,
	}
}

// File handles GET /api/file?path=. The path is resolved inside the
// storage root; anything that escapes it answers 404.
func (c *MiscController) File(ctx *gin.Context) {
	target, err := c.storage.Resolve(ctx.Query("path"))
	if err != nil {
		c.logger.Warn().Err(err).Str("path", ctx.Query("path")).Msg("Rejected file request")
		ctx.String(http.StatusNotFound, "Not found")
		return
	}
	ctx.File(target)
}

// Export handles GET /api/export?data=url. The fetched bytes stream back
// as an octet stream; the format parameter is accepted and ignored.
func (c *MiscController) Export(ctx *gin.Context) {
	url := ctx.Query("data")
	data, err := c.gatewayService.Export(ctx.Request.Context(), url, requestMeta(ctx, ""))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "application/octet-stream", data)
}

// Search handles GET /api/search?q=. Matching students render as escaped
// HTML fragments; an empty result set renders a no-results line echoing
// the query.
func (c *MiscController) Search(ctx *gin.Context) {
	q := ctx.Query("query")
	if q == "" {
		q = ctx.Query("q")
	}

	refs, err := c.studentService.SearchByName(ctx.Request.Context(), q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var b strings.Builder
	for _, ref := range refs {
		b.WriteString("<div><b>")
		b.WriteString(html.EscapeString(ref.ID))
		b.WriteString("</b> - ")
		b.WriteString(html.EscapeString(ref.Name))
		b.WriteString(" (")
		b.WriteString(html.EscapeString(ref.Dept))
		b.WriteString(")</div>")
	}
	if len(refs) == 0 {
		b.WriteString("<div>No results for \"")
		b.WriteString(html.EscapeString(q))
		b.WriteString("\"</div>")
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// UploadsList handles GET /api/uploads/list.
func (c *MiscController) UploadsList(ctx *gin.Context) {
	files, err := c.storage.List()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list uploads")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Failed to list uploads")))
		return
	}
	ctx.JSON(http.StatusOK, files)
}

// Info handles GET /api.
func (c *MiscController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIInfo{
		Message: "Student Information Center API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"login":             "POST /api/login",
			"register":          "POST /api/register",
			"students":          "GET /api/students",
			"studentProfile":    "GET /api/student/profile/:id",
			"studentMarks":      "GET /api/student/marks/:id",
			"studentAttendance": "GET /api/student/attendance/:id",
			"studentFees":       "GET /api/student/fees/:id",
			"libraryBooks":      "GET /api/library/books?student_id=ID",
			"announcements":     "GET /api/announcements",
		},
		Status: "running",
	})
}

// Ping handles GET /ping.
func (c *MiscController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
