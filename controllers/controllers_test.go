package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"hotel-frontdesk/lifecycle"
	"hotel-frontdesk/registry"
	"hotel-frontdesk/services"
)

func TestRespondError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: 808", lifecycle.ErrDuplicateNumber), http.StatusConflict, "error.duplicateRoomNumber"},
		{lifecycle.ErrTransitionNotAllowed, http.StatusConflict, "error.transitionNotAllowed"},
		{fmt.Errorf("check out: %w", lifecycle.ErrInvalidState), http.StatusConflict, "error.invalidRoomState"},
		{lifecycle.ErrNotConfirmed, http.StatusPreconditionRequired, "error.confirmationRequired"},
		{registry.ErrRoomNotFound, http.StatusNotFound, "error.roomNotFound"},
		{services.ErrAdvisoryBusy, http.StatusTooManyRequests, "error.assistantBusy"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "error.internal"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, zerolog.Nop(), tc.err)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), `"code":"`+tc.code+`"`)
	}
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	healthy := NewHealthController(map[string]Pinger{
		"rooms": pingFunc(func(context.Context) error { return nil }),
		"cache": nil,
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	healthy.Health(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "cache")

	broken := NewHealthController(map[string]Pinger{
		"rooms": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
	})
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	broken.Health(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestRegisterValidators_Idempotent(t *testing.T) {
	assert.NoError(t, RegisterValidators())
	assert.NoError(t, RegisterValidators())
}
