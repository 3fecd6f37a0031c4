package util

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppError carries the HTTP status an error should surface as. Services
// return these (or the sentinels below); controllers hand them to
// HandleError instead of mapping statuses by hand.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

// NewConstraintError is for foreign-key violations blocking a delete;
// surfaced as 400 with a human-readable hint rather than the raw
// database error.
func NewConstraintError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

var (
	ErrEmailRegistered    = NewConflictError("email is already registered")
	ErrInvalidCredentials = &AppError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	ErrUserNotFound       = NewNotFoundError("user not found")
	ErrCategoryNotFound   = NewNotFoundError("category not found")
	ErrPathNotFound       = NewNotFoundError("learning path not found")
	ErrNodeNotFound       = NewNotFoundError("node not found")
	ErrContentNotFound    = NewNotFoundError("content not found")
	ErrQuestionNotFound   = NewNotFoundError("question not found")
	ErrProgressNotFound   = NewNotFoundError("progress record not found, start the path first")
)

// HandleError maps service errors onto the response envelope. Unknown
// errors are logged and answered with a 500.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Error(c, appErr.Status, appErr.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c)
		return
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Duplicate entry"), strings.Contains(msg, "UNIQUE constraint failed"):
		Error(c, http.StatusConflict, "Record already exists")
	case strings.Contains(msg, "foreign key constraint"), strings.Contains(msg, "FOREIGN KEY constraint failed"):
		BadRequest(c, "Record has dependent data and cannot be modified")
	default:
		LogInternalError(c, err)
	}
}
