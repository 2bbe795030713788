package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvparser/internal/domain"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Unsupported file type: exe. Allowed types: pdf, docx, txt"`
}

// RespondOK sends a 200 response with data as the body.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

// MapDomainError translates domain errors to HTTP status codes and detail messages.
func MapDomainError(err error) (status int, detail string) {
	var pe *domain.PipelineError
	switch {
	case errors.Is(err, domain.ErrClientInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrExtractionFailed), errors.Is(err, domain.ErrInferenceFailed):
		status = http.StatusInternalServerError
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
	if errors.As(err, &pe) {
		return status, pe.Detail
	}
	return status, err.Error()
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, detail := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		slog.Error("request failed", "request_id", requestID, "path", c.Request.URL.Path, "error", err)
	}
	RespondError(c, status, detail)
}
