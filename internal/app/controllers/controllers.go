// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sicproject/backend/internal/app/services"
)

// requestMeta builds the audit context for one call. The actor is the
// identity the caller claims; there is no session to verify it against.
func requestMeta(c *gin.Context, actor string) services.RequestMeta {
	return services.RequestMeta{
		Actor:    actor,
		Endpoint: c.FullPath(),
		IP:       c.ClientIP(),
	}
}
