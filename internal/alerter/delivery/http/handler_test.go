package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-stock-alert/internal/alerter/dto"
	"golang-stock-alert/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return log
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// Malformed requests are rejected before any service call, with the
// shared bad-request code rather than a domain-specific one.
func TestAlertHandlerBadRequests(t *testing.T) {
	e := echo.New()
	h := NewAlertHandler(nil, newTestLogger(t))

	t.Run("unparseable create body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader("{not json"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		require.NoError(t, h.CreateAlert(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("non-numeric user id on list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?user_id=abc", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, h.GetUserAlerts(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("non-numeric alert id on disable", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts/abc/disable?user_id=42", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.DisableAlert(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("missing user id on delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/alerts/10", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("10")

		require.NoError(t, h.DeleteAlert(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.CodeInvalidRequest, decodeError(t, rec).Code)
	})
}

func TestUserHandlerBadRequests(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(nil, newTestLogger(t))

	t.Run("non-numeric user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.GetUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.CodeInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("non-numeric user id on notifications", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/abc/notifications", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.GetUserNotifications(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, dto.CodeInvalidRequest, decodeError(t, rec).Code)
	})
}
