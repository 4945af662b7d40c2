package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/services"
	"github.com/sicproject/backend/internal/middleware"
)

// LibraryController handles loan lookups and reservations.
type LibraryController struct {
	libraryService services.LibraryService
	logger         zerolog.Logger
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(libraryService services.LibraryService, logger zerolog.Logger) *LibraryController {
	return &LibraryController{
		libraryService: libraryService,
		logger:         logger,
	}
}

// Books handles GET /api/library/books?student_id=ID. A missing or
// unknown student id yields an empty list.
func (c *LibraryController) Books(ctx *gin.Context) {
	loans, err := c.libraryService.LoansByStudent(ctx.Request.Context(), ctx.Query("student_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// Search handles GET /api/library/search?q=term against loan titles and
// book ids.
func (c *LibraryController) Search(ctx *gin.Context) {
	loans, err := c.libraryService.Search(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// Reserve handles POST /api/library/reserve.
func (c *LibraryController) Reserve(ctx *gin.Context) {
	var req dto.ReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid reserve request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "book_id and student_id are required")))
		return
	}

	if _, err := c.libraryService.Reserve(ctx.Request.Context(), req.StudentID, req.BookID, requestMeta(ctx, req.StudentID)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "reserved"})
}
