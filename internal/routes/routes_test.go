package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/dropwatch/internal/config"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		StoreBackend:    "memory",
		StoreTimeout:    time.Second,
		AdminAuthMode:   "passcode",
		AdminCode:       "open-sesame",
		JWTSecret:       "test-secret",
		JWTExpireHours:  1,
		SubmitRateLimit: 2,
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter(logger.FATAL, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app, err := NewApp(ctx, cfg, log)
	require.NoError(t, err)
	assert.Nil(t, app.Uploader)

	r := gin.New()
	require.NoError(t, SetupRoutes(ctx, r, app, cfg, log))
	return r
}

func send(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["data"].(map[string]any)
}

func TestEndToEnd(t *testing.T) {
	r := newTestRouter(t, testConfig())

	w := send(r, http.MethodPost, "/api/v1/reports", "", map[string]any{
		"name": "Thandi", "contact": "thandi@example.com", "address": "1 Main Rd", "category": "Leakage",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ref := data(t, w)["reference"].(string)

	// admin routes need a token
	w = send(r, http.MethodGet, "/api/v1/admin/dashboard", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = send(r, http.MethodPost, "/api/v1/admin/login", "", map[string]string{"code": "open-sesame"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := data(t, w)["token"].(string)

	w = send(r, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), data(t, w)["total"])

	w = send(r, http.MethodPatch, "/api/v1/admin/reports/"+ref+"/status", token, map[string]string{"status": "Resolved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = send(r, http.MethodGet, "/api/v1/reports/"+ref, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Resolved", data(t, w)["status"])

	w = send(r, http.MethodPatch, "/api/v1/admin/reports/"+ref+"/status", token, map[string]string{"status": "Pending"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubmitIsRateLimited(t *testing.T) {
	r := newTestRouter(t, testConfig())

	body := map[string]any{"name": "Thandi", "contact": "thandi@example.com", "address": "1 Main Rd"}
	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusCreated, send(r, http.MethodPost, "/api/v1/reports", "", body).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, send(r, http.MethodPost, "/api/v1/reports", "", body).Code)

	// status checks are not limited
	assert.Equal(t, http.StatusNotFound, send(r, http.MethodGet, "/api/v1/reports/ZZZZZZZZ", "", nil).Code)
}

func TestNewAppUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.StoreBackend = "excel"
	_, err := NewApp(context.Background(), cfg, logger.NewWithWriter(logger.FATAL, io.Discard))
	assert.Error(t, err)
}
