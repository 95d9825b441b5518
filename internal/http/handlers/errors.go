package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfservice/internal/domain"
	"pdfservice/internal/http/middleware"
)

func respondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"success":    false,
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil && err.Error() != message {
		payload["detail"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Internal messages
// are surfaced as-is (they are already human readable); stack traces never
// leave the service.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsRender(err):
		respondError(c, http.StatusInternalServerError, err.Error(), nil)
	case domain.IsDelivery(err):
		respondError(c, http.StatusInternalServerError, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
