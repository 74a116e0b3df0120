package utils

import (
	"net/http"

	"hostel-backend/apperrors"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// RespondServiceError maps a service error's kind onto an HTTP status.
func RespondServiceError(c *gin.Context, err error) {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		JSONError(c, http.StatusBadRequest, err.Error())
	case apperrors.KindNotFound:
		JSONError(c, http.StatusNotFound, err.Error())
	case apperrors.KindCapacity, apperrors.KindStateConflict:
		JSONError(c, http.StatusConflict, err.Error())
	case apperrors.KindPaymentFailed:
		JSONError(c, http.StatusPaymentRequired, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
