package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sicproject/backend/internal/app/models/dto"
	"github.com/sicproject/backend/internal/app/services"
	"github.com/sicproject/backend/internal/middleware"
)

// AuthController handles login, registration and the password check.
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login handles POST /api/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "username and password are required")))
		return
	}

	resp, err := c.authService.Authenticate(ctx.Request.Context(), req.Username, req.Password, requestMeta(ctx, req.Username))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Register handles POST /api/register.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid register request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "username and password are required")))
		return
	}

	id, err := c.authService.Register(ctx.Request.Context(), req.Username, req.Password, requestMeta(ctx, req.Username))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RegisterResponse{Status: "registered", ID: id})
}

// ForgotPassword handles POST /api/forgot-password. The answer reveals
// whether the account exists; that enumeration surface is part of the
// endpoint contract.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "username is required")))
		return
	}

	exists, err := c.authService.UsernameExists(ctx.Request.Context(), req.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := "not_found"
	if exists {
		status = "ok"
	}
	ctx.JSON(http.StatusOK, dto.StatusResponse{Status: status})
}
