package finance_core

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError is a service failure that maps onto an HTTP status.
type AppError struct {
	Status  int            `json:"-"`
	Message string         `json:"detail"`
	Context map[string]any `json:"context,omitempty"`
}

func (e *AppError) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s %v", e.Message, e.Context)
}

// NotFound covers both a truly absent row and a row owned by someone
// else. The two cases must stay indistinguishable.
func NotFound(context map[string]any) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Message: "not found",
		Context: context,
	}
}

func CreateFailed(context map[string]any) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Message: "create failed",
		Context: context,
	}
}

func ValidationFailed(detail string) *AppError {
	return &AppError{
		Status:  http.StatusUnprocessableEntity,
		Message: detail,
	}
}

func BadRequest(detail string) *AppError {
	return &AppError{
		Status:  http.StatusBadRequest,
		Message: detail,
	}
}

func Unauthorized(detail string) *AppError {
	return &AppError{
		Status:  http.StatusUnauthorized,
		Message: detail,
	}
}

// AbortWithError writes err as a JSON response. Unknown error types
// surface as a bare 500.
func AbortWithError(c *gin.Context, err error) {
	var apperr *AppError
	if errors.As(err, &apperr) {
		c.AbortWithStatusJSON(apperr.Status, apperr)
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, &AppError{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	})
}
