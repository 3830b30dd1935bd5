package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/dropwatch/internal/pkg/pagination"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessAndErrorResponses(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"foo": "bar"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "success", body["status"])
	require.Equal(t, "bar", body["data"].(map[string]any)["foo"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, http.StatusBadRequest, "bad request", "BAD_REQ")
	require.Equal(t, http.StatusBadRequest, w.Code)
	body = decode(t, w)
	require.Equal(t, "bad request", body["error"])
	require.Equal(t, "BAD_REQ", body["code"])
	require.NotContains(t, body, "details")
}

func TestValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationFailed(c, "Invalid submission", []map[string]string{{"field": "name"}})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	require.Equal(t, "VALIDATION_FAILED", body["code"])
	require.Len(t, body["details"], 1)
}

func TestStoreUnavailable(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	StoreUnavailable(c)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "STORE_UNAVAILABLE", decode(t, w)["code"])
}

func TestPaginatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	items := []map[string]any{{"id": 1}, {"id": 2}}
	Paginated(c, items, pagination.New(1, 10, 2))

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "success", body["status"])
	require.Len(t, body["data"], 2)
	meta := body["pagination"].(map[string]any)
	require.Equal(t, float64(2), meta["total"])
	require.Equal(t, float64(10), meta["limit"])
	require.Equal(t, float64(1), meta["page"])
}
