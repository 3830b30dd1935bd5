package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
)

func TestLogger_MasksReporterDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Logger(logger.NewWithWriter(logger.DEBUG, &buf)))
	r.POST("/api/v1/reports", func(c *gin.Context) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "VALIDATION_FAILED"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	body := `{"name":"Thandi","contact":"thandi@example.com","address":"1 Main Rd"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, "POST /api/v1/reports -> 422")
	assert.Contains(t, out, "1 Main Rd")
	assert.NotContains(t, out, "thandi@example.com")
	assert.NotContains(t, out, "Thandi")
	assert.Contains(t, out, "VALIDATION_FAILED")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("https://reports.example.org"))
	r.PATCH("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://reports.example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://reports.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")

	req = httptest.NewRequest(http.MethodPatch, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
