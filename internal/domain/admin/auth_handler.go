package admin

import (
	"errors"
	"log"
	"net/http"

	"academy/internal/middleware"
	"academy/internal/pkg/request"
	"academy/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service *Service
}

func NewAuthHandler(service *Service) *AuthHandler {
	return &AuthHandler{service: service}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

// Login godoc
// @Summary Admin Login
// @Description Authenticate as admin and get a 24h session token
// @Tags Admin Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !request.BindJSON(c, &req) {
		return
	}

	token, admin, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password")
			return
		}
		log.Printf("admin_login_failed username=%s error=%q", req.Username, err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Login successful",
		"username": admin.Username,
		"token":    token,
		"admin":    admin,
	})
}

// VerifyToken godoc
// @Summary Verify session token
// @Description Confirms the bearer token is valid and returns the decoded session
// @Tags Admin Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /verify-token [get]
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if session == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"valid":       true,
		"username":    session.Username,
		"role":        session.Role,
		"permissions": session.Permissions,
		"issuedAt":    session.IssuedAt,
		"expiresAt":   session.ExpiresAt,
	})
}
