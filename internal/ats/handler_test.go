package ats_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/bootstrap"
	"roleready-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestMatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/ats/match", map[string]any{
		"skills":         []string{"React", "SQL"},
		"jobDescription": "Looking for React and SQL developers",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result struct {
		Matched         []string `json:"matched"`
		Missing         []string `json:"missing"`
		Score           int      `json:"score"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Score != 25 {
		t.Fatalf("expected score 25, got %d", result.Score)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
}

func TestMatchEndpointEmptyJobDescription(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/ats/match", map[string]any{
		"skills":         []string{"Go"},
		"jobDescription": "   ",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank job description, got %d", resp.Code)
	}
}

func TestKeywordsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ats/keywords", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Keywords) != 8 {
		t.Fatalf("expected 8 reference keywords, got %d", len(body.Keywords))
	}
}
