package inquiry

import (
	"errors"
	"log"
	"net/http"

	"academy/internal/pkg/request"
	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles inquiry HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates inquiry handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /inquiry (public)
// @Summary Submit inquiry
// @Description Public contact form submission
// @Tags Inquiries
// @Accept json
// @Produce json
// @Param request body CreateInquiryRequest true "Inquiry"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /inquiry [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInquiryRequest
	if !request.BindJSON(c, &req) {
		return
	}

	inq, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("inquiry_create_failed ip=%s error=%q", c.ClientIP(), err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit inquiry", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Inquiry submitted successfully",
		"inquiry": inq,
	})
}

// GetAll handles GET /admin/getall
// @Summary List inquiries
// @Tags Admin Inquiries
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/getall [get]
func (h *Handler) GetAll(c *gin.Context) {
	inquiries, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("inquiry_list_failed error=%q", err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch inquiries", err.Error())
		return
	}
	if inquiries == nil {
		inquiries = []Inquiry{}
	}

	response.Success(c, http.StatusOK, gin.H{"inquiries": inquiries})
}

// Update handles PATCH /admin/update/:id
// @Summary Update inquiry
// @Tags Admin Inquiries
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body UpdateInquiryRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /admin/update/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid inquiry ID")
		return
	}

	var req UpdateInquiryRequest
	if !request.BindJSON(c, &req) {
		return
	}

	inq, err := h.service.Update(c.Request.Context(), id, &req)
	switch {
	case err == nil:
	case errors.Is(err, ErrNothingToUpdate):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "No fields to update")
		return
	case errors.Is(err, ErrInquiryNotFound):
		response.Error(c, http.StatusNotFound, "INQUIRY_NOT_FOUND", "Inquiry not found")
		return
	default:
		log.Printf("inquiry_update_failed id=%s error=%q", id, err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update inquiry", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Inquiry updated successfully",
		"inquiry": inq,
	})
}
