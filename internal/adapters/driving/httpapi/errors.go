package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/mevzuat-cli/internal/core/domain"
	"github.com/custodia-labs/mevzuat-cli/internal/logger"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrUnknownSource):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnsupportedFormat), errors.Is(err, domain.ErrParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrLLMUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("[%s] %s %s: %v", c.GetString(keyRequestID), c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, errorResponse{
		Error:     err.Error(),
		RequestID: c.GetString(keyRequestID),
	})
}
