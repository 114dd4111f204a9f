package campaign

import (
	"errors"
	"log"
	"net/http"

	"academy/internal/middleware"
	"academy/internal/pkg/request"
	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles ad campaign HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates campaign handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetActive handles GET /ad-campaigns/active (public)
// @Summary Active campaign
// @Description Returns the single banner to display now, or null
// @Tags Campaigns
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ad-campaigns/active [get]
func (h *Handler) GetActive(c *gin.Context) {
	active, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		h.internalError(c, "get_active", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": active})
}

// List handles GET /admin/ad-campaigns
// @Summary List campaigns
// @Tags Admin Campaigns
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/ad-campaigns [get]
func (h *Handler) List(c *gin.Context) {
	campaigns, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.internalError(c, "list", err)
		return
	}
	if campaigns == nil {
		campaigns = []Campaign{}
	}

	response.Success(c, http.StatusOK, gin.H{"campaigns": campaigns})
}

// Create handles POST /admin/ad-campaigns
// @Summary Create campaign
// @Tags Admin Campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateCampaignRequest true "Campaign"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /admin/ad-campaigns [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCampaignRequest
	if !request.BindJSON(c, &req) {
		return
	}

	var createdBy string
	if session := middleware.SessionFrom(c); session != nil {
		createdBy = session.Username
	}

	created, err := h.service.Create(c.Request.Context(), &req, createdBy)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":  "Campaign created",
		"campaign": created,
	})
}

// Update handles PATCH /admin/ad-campaigns/:id
// @Summary Update campaign
// @Tags Admin Campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body UpdateCampaignRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/ad-campaigns/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if !request.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, "update", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Campaign updated",
		"campaign": updated,
	})
}

// Delete handles DELETE /admin/ad-campaigns/:id
// @Summary Delete campaign
// @Tags Admin Campaigns
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/ad-campaigns/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := campaignID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, "delete", err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Campaign deleted"})
}

func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(),
			map[string]string{verr.Field: verr.Message})
	case errors.Is(err, ErrNothingToUpdate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
	case errors.Is(err, ErrCampaignNotFound):
		response.Error(c, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "Campaign not found")
	default:
		h.internalError(c, op, err)
	}
}

func (h *Handler) internalError(c *gin.Context, op string, err error) {
	log.Printf("campaign_%s_failed error=%q", op, err)
	response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process campaign", err.Error())
}

func campaignID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid campaign ID")
		return "", false
	}
	return id, true
}
