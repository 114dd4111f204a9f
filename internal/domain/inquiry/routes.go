package inquiry

import (
	"academy/internal/domain/admin"
	"academy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/inquiry", h.Create)
}

// RegisterAdminRoutes expects a group already guarded by JWTAuth.
func (h *Handler) RegisterAdminRoutes(adminGroup *gin.RouterGroup) {
	adminGroup.GET("/getall", middleware.RequirePermission(string(admin.PermInquiriesRead)), h.GetAll)
	adminGroup.PATCH("/update/:id", middleware.RequirePermission(string(admin.PermInquiriesUpdate)), h.Update)
}
