package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"shipagency/internal/model"
	"shipagency/internal/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	st, err := store.New(filepath.Join(dir, "shipagency.db"))
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	h := NewHandler(st, filepath.Join(dir, "exports"))
	router := gin.New()
	h.RegisterRoutes(router.Group("/api"))
	return router, st
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// createScenario 通过 API 创建方案并返回响应体
func createScenario(t *testing.T, router *gin.Engine, body interface{}) *model.Scenario {
	t.Helper()
	w := doRequest(t, router, http.MethodPost, "/api/scenarios", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create scenario: status %d body %s", w.Code, w.Body.String())
	}
	var sc model.Scenario
	decodeBody(t, w, &sc)
	return &sc
}

func TestGetStatus(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var status StatusResponse
	decodeBody(t, w, &status)
	if status.Initialized || status.ScenarioCount != 0 || status.CurrentScenarioID != "" {
		t.Fatalf("空库状态不符: %+v", status)
	}

	createScenario(t, router, gin.H{"name": "First"})

	w = doRequest(t, router, http.MethodGet, "/api/status", nil)
	decodeBody(t, w, &status)
	if !status.Initialized || status.ScenarioCount != 1 {
		t.Fatalf("建库后状态不符: %+v", status)
	}
	if status.CurrentScenarioID == "" {
		t.Fatalf("第一个方案应自动设为当前方案")
	}
}

func TestGetDefaults(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doRequest(t, router, http.MethodGet, "/api/defaults", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var defaults DefaultsResponse
	decodeBody(t, w, &defaults)
	if len(defaults.ShipTypes) != len(model.DefaultShipTypes) {
		t.Fatalf("船型默认表数量不符: %d", len(defaults.ShipTypes))
	}
	if len(defaults.PredefinedLocations) != len(model.PredefinedLocations) {
		t.Fatalf("预置机构数量不符: %d", len(defaults.PredefinedLocations))
	}
	if len(defaults.CorporatePositions) == 0 || len(defaults.PortPositions) == 0 {
		t.Fatalf("岗位默认表不应为空")
	}
}
