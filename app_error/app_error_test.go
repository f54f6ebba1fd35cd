package app_error

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"vaulting/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 404, StatusOf(gorm.ErrRecordNotFound))
	assert.Equal(t, 404, StatusOf(fmt.Errorf("user with id 3 not found: %w", gorm.ErrRecordNotFound)))
	assert.Equal(t, 404, StatusOf(service.ErrPartNotDefined))
	assert.Equal(t, 400, StatusOf(fmt.Errorf("%w: R3F", service.ErrInvalidPart)))
	assert.Equal(t, 403, StatusOf(service.ErrPermission))
	assert.Equal(t, 409, StatusOf(fmt.Errorf("%w: 7.4 != 7.5", service.ErrScoreMismatch)))
	assert.Equal(t, 409, StatusOf(service.ErrDataInconsistency))
	assert.Equal(t, 500, StatusOf(errors.New("connection refused")))
	assert.Equal(t, 418, StatusOf(New(service.ErrValidation, 418)))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Respond(c, fmt.Errorf("%w: table A", service.ErrAlreadySubmitted))
	assert.Equal(t, 409, w.Code)
	assert.JSONEq(t, `{"error": "score sheet already submitted for this table: table A"}`, w.Body.String())
}
