package middleware

import (
	"net/http"

	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequirePermission ensures the authenticated admin holds the capability.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session == nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		if !session.Has(permission) {
			response.Abort(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}
