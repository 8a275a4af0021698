package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/partner-showcase/pkg/common"
	"github.com/richxcame/partner-showcase/pkg/validation"
)

// ValidateQuery binds query parameters to req and validates it
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return err
	}
	return validation.ValidateStruct(req)
}

// RespondWithValidationError sends a standardized validation error response
func RespondWithValidationError(c *gin.Context, err error) {
	var valErr *validation.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": common.ErrorInfo{
				Code:    http.StatusBadRequest,
				Message: "validation failed",
			},
			"fields": valErr.Errors,
		})
		return
	}
	common.ErrorResponse(c, http.StatusBadRequest, err.Error())
}

// ValidateAndBindQuery validates and binds query parameters to the provided struct.
// Returns false after writing a 400 response when validation fails.
func ValidateAndBindQuery(c *gin.Context, req interface{}) bool {
	if err := ValidateQuery(c, req); err != nil {
		RespondWithValidationError(c, err)
		return false
	}
	return true
}
