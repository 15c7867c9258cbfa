package controllers

import (
	"BookShelf/internal/app_errors"
	"BookShelf/internal/models"
	"BookShelf/internal/service/auth"
	"BookShelf/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	ClientIDCtx   = "client_id"
	ClientNameCtx = "client_name"
	ClientRoleCtx = "client_role"
)

// AuthMiddleware extracts and verifies the bearer token. The claims alone
// decide identity and role for the rest of the request, the user record is
// not consulted.
func (h *AuthHandler) AuthMiddleware(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	var token string
	if parts := strings.Split(authHeader, "Bearer "); len(parts) == 2 {
		token = parts[1]
	}
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := h.AuthService.ParseToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, app_errors.ErrTokenExpired) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrTokenExpired.Error()})
			return
		}
		h.log.Info("failed to parse token", logger.Err(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "cant parse token"})
		return
	}

	c.Set(ClientIDCtx, claims.UserID)
	c.Set(ClientNameCtx, claims.Username())
	c.Set(ClientRoleCtx, claims.Role)
	c.Next()
}

// RequireRoles gates a route on the caller's role claim. It runs after
// AuthMiddleware, so a missing role here is a server bug, not a client error.
func RequireRoles(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ClientRoleCtx)
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not found"})
			return
		}

		role, ok := raw.(models.Role)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "invalid role format"})
			return
		}

		if !auth.RoleAllowed(role, allowedRoles...) {
			writeError(c, http.StatusForbidden, "Forbidden.", "insufficient permissions")
			return
		}
		c.Next()
	}
}

func LoggingMiddleware(logger logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery
		if rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}
		status := c.Writer.Status()

		logger.Info(fmt.Sprintf("%s %s", method, path),
			"status", status,
			"latency", latency,
			"client_ip", clientIP,
		)

		for _, ginErr := range c.Errors {
			logger.ErrorErr("HTTP request error", ginErr.Err,
				"status", status,
				"method", method,
				"path", path,
			)
		}
	}
}
