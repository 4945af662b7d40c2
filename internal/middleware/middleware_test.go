package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sicproject/backend/internal/pkg/apperrors"
)

func TestRequestIDAssignsFreshID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDKeepsCallerProvidedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/x", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", rec.Body.String())
}

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.ErrNotFound, http.StatusNotFound, "RES_001"},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "RES_001"},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, "RES_002"},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"missing file", apperrors.ErrNoFile, http.StatusBadRequest, "VAL_002"},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest, "VAL_001"},
		{"storage down", apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable, "SRV_002"},
		{"external timeout", apperrors.ErrExternalCallTimeout, http.StatusGatewayTimeout, "SRV_003"},
		{"wrapped sentinel", errors.Join(errors.New("pool closed"), apperrors.ErrStorageUnavailable), http.StatusServiceUnavailable, "SRV_002"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/x", func(c *gin.Context) { HandleAPIError(c, tt.err) })

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}
