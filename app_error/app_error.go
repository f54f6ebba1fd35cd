package app_error

import (
	"errors"

	"vaulting/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

func New(err error, status int) error {
	return statusError{error: err, status: status}
}

var statusByError = []struct {
	err    error
	status int
}{
	{gorm.ErrRecordNotFound, 404},
	{service.ErrPartNotDefined, 404},
	{service.ErrNoSelectedEvent, 404},
	{service.ErrInvalidPart, 400},
	{service.ErrValidation, 400},
	{service.ErrPermission, 403},
	{service.ErrScoreMismatch, 409},
	{service.ErrAlreadySubmitted, 409},
	{service.ErrDataInconsistency, 409},
	{service.ErrCategoryInUse, 409},
}

// StatusOf maps an error to the HTTP status it is answered with.
func StatusOf(err error) int {
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		return withStatus.HTTPStatus()
	}
	for _, known := range statusByError {
		if errors.Is(err, known.err) {
			return known.status
		}
	}
	return 500
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

func Respond(c *gin.Context, err error) {
	WithHTTPStatus(c, err, StatusOf(err))
}
