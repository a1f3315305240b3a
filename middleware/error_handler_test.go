package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/travelmate-app/travelmate-backend/errors"
	"github.com/travelmate-app/travelmate-backend/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.IsTest = true
}

func performRequestWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandler_AppErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"plan not found", apperrors.PlanNotFound("plan-1"), http.StatusNotFound, string(apperrors.PlanNotFoundError)},
		{"plan access denied", apperrors.PlanAccessDenied("u1", "plan-1"), http.StatusForbidden, string(apperrors.PlanAccessError)},
		{"destination not found", apperrors.DestinationNotFound("d1"), http.StatusNotFound, string(apperrors.DestinationNotFoundError)},
		{"validation", apperrors.ValidationFailed("bad input", "pax must be numeric"), http.StatusBadRequest, string(apperrors.ValidationError)},
		{"rate limited", apperrors.RateLimitExceeded("Too many requests", 30), http.StatusTooManyRequests, string(apperrors.RateLimitError)},
		{"database", apperrors.NewDatabaseError(errors.New("pq: broken")), http.StatusInternalServerError, string(apperrors.DatabaseError)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performRequestWithError(t, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tc.wantType, body["type"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestErrorHandler_HidesInternalDetail(t *testing.T) {
	w := performRequestWithError(t, apperrors.NewDatabaseError(errors.New("password authentication failed")))

	body := decodeBody(t, w)
	assert.NotContains(t, w.Body.String(), "password authentication failed")
	assert.Equal(t, "Database operation failed", body["message"])
	assert.NotContains(t, body, "details")
}

func TestErrorHandler_ExposesValidationDetail(t *testing.T) {
	w := performRequestWithError(t, apperrors.ValidationFailed("Invalid form", "startDate must be YYYY-MM-DD"))

	body := decodeBody(t, w)
	assert.Equal(t, "startDate must be YYYY-MM-DD", body["details"])
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	w := performRequestWithError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, string(apperrors.ServerError), body["type"])
}

func TestErrorHandler_NoErrorPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
