package campaign

import (
	"academy/internal/domain/admin"
	"academy/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.GET("/ad-campaigns/active", h.GetActive)
}

// RegisterAdminRoutes expects a group already guarded by JWTAuth.
func (h *Handler) RegisterAdminRoutes(adminGroup *gin.RouterGroup) {
	read := middleware.RequirePermission(string(admin.PermCampaignsRead))
	write := middleware.RequirePermission(string(admin.PermCampaignsWrite))

	campaigns := adminGroup.Group("/ad-campaigns")
	{
		campaigns.GET("", read, h.List)
		campaigns.POST("", write, h.Create)
		campaigns.PATCH("/:id", write, h.Update)
		campaigns.DELETE("/:id", write, h.Delete)
	}
}
