package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayaramilanesi/url-shortener-api/internal/services/smocks"
)

func TestHealthIndex(t *testing.T) {
	router, _ := newTestRouter(new(smocks.URLMock), new(smocks.UserMock))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Message   string `json:"message"`
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
		Service   string `json:"service"`
		Version   string `json:"version"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))

	assert.Equal(t, "Hello World!", resp.Message)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, serviceName, resp.Service)
	assert.Equal(t, serviceVersion, resp.Version)

	_, parseErr := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, parseErr)
}
