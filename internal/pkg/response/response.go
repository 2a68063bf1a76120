// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "suscripciones-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Type codes carried in the envelope, kept stable for API consumers.
const (
	TypeSuccess = "1"
	TypeWarning = "2"
	TypeError   = "3"
	TypeInfo    = "4"
)

// Envelope defines the standard API response format.
type Envelope struct {
	Type       string      `json:"type"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
}

// Success sends a successful response with a message and optional data.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}

	c.JSON(status, Envelope{
		Type:       TypeSuccess,
		Message:    message,
		StatusCode: status,
		Data:       data,
	})
}

// Error sends a standardized error response. Data is always null on errors.
func Error(c *gin.Context, code int, message string, err error) {
	c.Abort()

	if err != nil && message == "" {
		message = err.Error()
	}

	c.JSON(code, Envelope{
		Type:       TypeError,
		Message:    message,
		StatusCode: code,
		Data:       nil,
	})
}

// FromError maps a service error onto the envelope using the sentinel taxonomy.
func FromError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, xerrors.ErrNotFound):
		Error(c, http.StatusNotFound, xerrors.MessageOrDefault(err, fallback), err)
	case errors.Is(err, xerrors.ErrBadRequest), errors.Is(err, xerrors.ErrInvalidInput):
		Error(c, http.StatusBadRequest, xerrors.MessageOrDefault(err, fallback), err)
	case errors.Is(err, xerrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, xerrors.MessageOrDefault(err, fallback), err)
	case errors.Is(err, xerrors.ErrForbidden):
		Error(c, http.StatusForbidden, xerrors.MessageOrDefault(err, fallback), err)
	case errors.Is(err, xerrors.ErrRateLimited):
		Error(c, http.StatusTooManyRequests, xerrors.MessageOrDefault(err, fallback), err)
	default:
		Error(c, http.StatusInternalServerError, fallback, err)
	}
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string, err error) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}
