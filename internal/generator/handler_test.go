package generator_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
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

func TestGenerateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/generate", map[string]any{
		"section": "summary",
		"tone":    "technical",
		"prompt":  "distributed systems",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Summary == "" {
		t.Fatal("expected generated summary")
	}
}

func TestGenerateEndpointRequiresSection(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/generate", map[string]any{"prompt": "anything"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without section, got %d", resp.Code)
	}
}

func TestDetectEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/generate/detect", map[string]any{
		"text": "Help me write a summary for my resume",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result struct {
		InputType string `json:"inputType"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.InputType != "prompt" {
		t.Fatalf("expected prompt, got %q", result.InputType)
	}
}

func TestFileNameEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/generate/filename", map[string]any{
		"name":  "Alex Morgan",
		"title": "Software Engineer",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var result struct {
		FileName string `json:"fileName"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !regexp.MustCompile(`^Alex_Morgan_Software_Engineer_\d{4}-\d{2}$`).MatchString(result.FileName) {
		t.Fatalf("unexpected file name %q", result.FileName)
	}
}
