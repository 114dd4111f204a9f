package admin

import (
	"log"
	"net/http"

	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ManagementHandler serves the super-admin view of admin accounts.
type ManagementHandler struct {
	service *Service
}

func NewManagementHandler(service *Service) *ManagementHandler {
	return &ManagementHandler{service: service}
}

// ListAdmins godoc
// @Summary List admins
// @Description Get every admin account with its effective permissions
// @Tags Admin Management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /admin/admins [get]
func (h *ManagementHandler) ListAdmins(c *gin.Context) {
	admins, err := h.service.List(c.Request.Context())
	if err != nil {
		log.Printf("admin_list_failed error=%q", err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch admins", err.Error())
		return
	}

	type adminView struct {
		AdminUser
		EffectivePermissions []string `json:"effectivePermissions"`
	}
	views := make([]adminView, 0, len(admins))
	for _, a := range admins {
		views = append(views, adminView{AdminUser: a, EffectivePermissions: a.EffectivePermissions().Strings()})
	}

	response.Success(c, http.StatusOK, gin.H{"admins": views})
}
