package request

import (
	"net/http"

	"academy/internal/pkg/response"
	"academy/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// BindJSON strictly decodes and validates the request body into req. On
// failure it writes a 400 response and returns false.
func BindJSON(c *gin.Context, req interface{}) bool {
	if err := validator.Decode(c.Request.Body, req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", err.Error())
		return false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid fields", errs)
		return false
	}
	return true
}
