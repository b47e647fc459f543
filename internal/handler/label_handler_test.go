package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipmark/internal/catalog"
	"shipmark/internal/handler"
	"shipmark/internal/label"
	"shipmark/internal/service"
	"shipmark/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func labelRouter(t *testing.T, csv string) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	if csv != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "data.csv"), []byte(csv), 0o644))
	}
	store := catalog.NewStore(dir)
	svc := service.NewLabelService(store, label.NewRenderer(new(mocks.MockBarcodeEncoder), ""))
	h := handler.NewLabelHandler(svc)

	r := gin.New()
	r.GET("/labels/search", h.Search)
	r.POST("/labels/render", h.Render)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLabelSearch_MissingQuery(t *testing.T) {
	r := labelRouter(t, "Product_No,Name\nA-1,Thing\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/labels/search", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_QUERY", resp.Error.Code)
}

func TestLabelSearch_CatalogUnavailable(t *testing.T) {
	r := labelRouter(t, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/labels/search?q=A-1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "CATALOG_UNAVAILABLE", resp.Error.Code)
}

func TestLabelSearch_OK(t *testing.T) {
	r := labelRouter(t, "Product_No,Name,Energy\nA-1,Snack Bar,210kcal\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/labels/search?q=snack", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestLabelRender_MissingStatus(t *testing.T) {
	r := labelRouter(t, "Product_No,Name\nA-1,Thing\n")

	body := `{"item": "Thing", "matched_data": {"Name": "Thing"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/labels/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
}

func TestLabelRender_OK(t *testing.T) {
	r := labelRouter(t, "Product_No,Name\nA-1,Thing\n")

	body := `{"item": "Thing", "matched_data": {"Cautions": "Keep sealed"}, "qty": 2, "status": "caution"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/labels/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	doc := resp.Data.(map[string]interface{})["html"].(string)
	assert.Contains(t, doc, "Keep sealed")
}

func TestLabelRender_NoLabelData(t *testing.T) {
	r := labelRouter(t, "Product_No,Name\nA-1,Thing\n")

	body := `{"matched_data": {"Name": "Thing"}, "status": "empty"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/labels/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "NO_LABEL_DATA", resp.Error.Code)
}
