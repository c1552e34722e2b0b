package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := SuccessResponse(c, http.StatusOK, "pong", map[string]int{"trips_today": 3})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "pong", resp.Message)
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := ErrorResponseHandler(c, http.StatusTooManyRequests, "rate limit exceeded")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "rate limit exceeded", resp.Error)
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
}

func TestParseJSONResponse(t *testing.T) {
	type payload struct {
		ID string `json:"id"`
	}

	t.Run("unwraps envelope", func(t *testing.T) {
		var out payload
		err := ParseJSONResponse([]byte(`{"success":true,"data":{"id":"trip-1"}}`), &out)
		require.NoError(t, err)
		assert.Equal(t, "trip-1", out.ID)
	})

	t.Run("failed envelope surfaces error", func(t *testing.T) {
		var out payload
		err := ParseJSONResponse([]byte(`{"success":false,"error":"captain suspended"}`), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "captain suspended")
	})

	t.Run("bare body", func(t *testing.T) {
		var out payload
		err := ParseJSONResponse([]byte(`{"id":"trip-2"}`), &out)
		require.NoError(t, err)
		assert.Equal(t, "trip-2", out.ID)
	})

	t.Run("envelope without data", func(t *testing.T) {
		var out payload
		require.NoError(t, ParseJSONResponse([]byte(`{"success":true}`), &out))
		assert.Empty(t, out.ID)
	})
}
