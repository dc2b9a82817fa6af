package transfer_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/bootstrap"
	"roleready-backend/internal/shared/config"
	"roleready-backend/internal/transfer"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	}

	app, err := bootstrap.Build(cfg)
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

func TestExportJSONDownload(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/transfer/export", map[string]any{
		"format":   "json",
		"fileName": "My_Resume",
		"data":     map[string]any{"name": "Alex Morgan"},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	disposition := resp.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, `My_Resume.json`) {
		t.Fatalf("unexpected Content-Disposition %q", disposition)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if _, ok := envelope["resumeData"]; !ok {
		t.Fatal("expected resumeData in export")
	}
}

func TestExportHTMLDownload(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/transfer/export", map[string]any{
		"format": "html",
		"data":   map[string]any{"name": "Alex Morgan", "summary": "Backend engineer."},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if !strings.Contains(resp.Body.String(), "Alex Morgan") {
		t.Fatal("expected rendered name in HTML")
	}
}

func TestExportUnknownFormat(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/transfer/export", map[string]any{"format": "pdf"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported format, got %d", resp.Code)
	}
}

func TestImportTextEndpoint(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/transfer/import", map[string]any{
		"type":    "text",
		"content": "Alex Morgan\nBackend engineer with ten years of experience.",
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result transfer.ImportResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Session.Data.Name != "Alex Morgan" {
		t.Fatalf("name not applied: %+v", result.Session.Data)
	}
	if len(result.AppliedKeys) == 0 {
		t.Fatal("expected appliedKeys")
	}
}

func TestImportJSONMergesIntoSession(t *testing.T) {
	router := newTestRouter(t)

	content, _ := json.Marshal(map[string]any{"resumeFileName": "imported"})
	resp := postJSON(t, router, "/api/v1/transfer/import", map[string]any{
		"type":    "json",
		"content": string(content),
		"session": map[string]any{
			"data": map[string]any{"name": "Keep Me"},
		},
	})

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result transfer.ImportResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Session.FileName != "imported" {
		t.Fatalf("file name not applied: %+v", result.Session)
	}
	if result.Session.Data.Name != "Keep Me" {
		t.Fatalf("existing session data lost: %+v", result.Session.Data)
	}
}

func TestImportLinkedInNotImplemented(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/transfer/import", map[string]any{
		"type":    "linkedin",
		"content": "https://linkedin.com/in/alex",
	})
	if resp.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", resp.Code)
	}
}

func TestImportUnknownType(t *testing.T) {
	router := newTestRouter(t)

	resp := postJSON(t, router, "/api/v1/transfer/import", map[string]any{"type": "carrier-pigeon"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "unknown import type") {
		t.Fatalf("unexpected error body: %s", resp.Body.String())
	}
}

func TestImportFileUpload(t *testing.T) {
	router := newTestRouter(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", "resume.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte("Alex Morgan\nBackend engineer focused on reliability.")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfer/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result transfer.ImportResult
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Session.Data.Name != "Alex Morgan" {
		t.Fatalf("name not extracted from upload: %+v", result.Session.Data)
	}
}

func uploadFile(t *testing.T, router *gin.Engine, guestID, fileName string, content []byte) string {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfer/import", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var result struct {
		StoredKey string `json:"storedKey"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.StoredKey == "" {
		t.Fatal("expected storedKey in file import response")
	}
	return result.StoredKey
}

func TestUploadedFileCanBeFetchedBack(t *testing.T) {
	router := newTestRouter(t)
	content := []byte("Alex Morgan\nBackend engineer focused on reliability.")

	storedKey := uploadFile(t, router, "test-guest", "resume.txt", content)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfer/uploads/"+storedKey, nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !bytes.Equal(resp.Body.Bytes(), content) {
		t.Fatalf("fetched bytes differ from upload: %q", resp.Body.String())
	}
	disposition := resp.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "resume.txt") {
		t.Fatalf("unexpected Content-Disposition %q", disposition)
	}
}

func TestUploadedFileHiddenFromOtherUsers(t *testing.T) {
	router := newTestRouter(t)

	storedKey := uploadFile(t, router, "test-guest", "resume.txt", []byte("Alex Morgan\nBackend engineer."))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfer/uploads/"+storedKey, nil)
	req.Header.Set("X-Guest-Id", "someone-else")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's key, got %d", resp.Code)
	}
}

func TestFetchMissingUpload(t *testing.T) {
	router := newTestRouter(t)

	uploadFile(t, router, "test-guest", "resume.txt", []byte("Alex Morgan"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/transfer/uploads/deadbeef/none_resume.txt", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown key, got %d", resp.Code)
	}
}
