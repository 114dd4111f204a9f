package admin

import (
	"academy/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes wires the login endpoint.
func (h *AuthHandler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/login", h.Login)
}

// RegisterProtectedRoutes expects a group already guarded by JWTAuth.
func (h *AuthHandler) RegisterProtectedRoutes(r gin.IRoutes) {
	r.GET("/verify-token", h.VerifyToken)
}

// RegisterAdminRoutes expects a group already guarded by JWTAuth.
func (h *ManagementHandler) RegisterAdminRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.GET("/admins", middleware.RequirePermission(string(PermAdminsManage)), h.ListAdmins)
}
