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
)

// FeedbackController handles the public comment box.
type FeedbackController struct {
	feedbackService services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// Submit handles POST /api/feedback. The student id is whatever the
// caller claims; the category field is accepted and discarded.
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req dto.FeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "comment is required")))
		return
	}

	id, err := c.feedbackService.Record(ctx.Request.Context(), req.StudentID, req.Comment, requestMeta(ctx, req.StudentID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: "ok", ID: id})
}

// List handles GET /api/feedback, rendering each comment as an escaped
// paragraph fragment.
func (c *FeedbackController) List(ctx *gin.Context) {
	comments, err := c.feedbackService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var b strings.Builder
	for _, comment := range comments {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(comment.Comment))
		b.WriteString("</p>")
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}
