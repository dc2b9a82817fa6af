package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/extract"
	"roleready-backend/internal/shared/metrics"
	"roleready-backend/internal/shared/server/middleware"
	"roleready-backend/internal/shared/server/respond"
	"roleready-backend/internal/shared/storage/object"
	"roleready-backend/internal/shared/telemetry"
	"roleready-backend/internal/shared/util"
)

const maxUploadBytes = 10 << 20

// Handler exposes session export and import over HTTP.
type Handler struct {
	store object.ObjectStore
}

// NewHandler constructs a Handler backed by the given object store for
// uploaded files.
func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes attaches transfer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/transfer/export", h.exportSession)
	rg.POST("/transfer/import", h.importSession)
	rg.GET("/transfer/uploads/*key", h.downloadUpload)
}

type exportRequest struct {
	Session
	Format string `json:"format"`
}

func (h *Handler) exportSession(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "json"
	}

	switch format {
	case "json":
		out, err := ExportJSON(req.Session, time.Now())
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build export", nil)
			return
		}
		metrics.IncExport("json")
		writeAttachment(c, ExportFileName(req.Session, "json"), "application/json", out)
	case "html":
		out, err := RenderHTML(req.Session)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render resume", nil)
			return
		}
		metrics.IncExport("html")
		writeAttachment(c, ExportFileName(req.Session, "html"), "text/html; charset=utf-8", out)
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "unsupported export format", gin.H{"format": format})
	}
}

type importRequest struct {
	Type    string  `json:"type"`
	Content string  `json:"content"`
	Session Session `json:"session"`
}

func (h *Handler) importSession(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.importFile(c)
		return
	}

	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	importType := strings.ToLower(strings.TrimSpace(req.Type))
	var (
		result ImportResult
		err    error
	)
	switch importType {
	case ImportTypeJSON:
		result, err = MergeJSON(req.Session, []byte(req.Content))
	case ImportTypeText:
		result, err = MergeText(req.Session, req.Content)
	case ImportTypeLinkedIn:
		respond.Error(c, http.StatusNotImplemented, "not_implemented", "LinkedIn import is not available yet", nil)
		return
	default:
		h.importError(c, fmt.Errorf("%w: %q", ErrUnknownType, req.Type))
		return
	}
	if err != nil {
		h.importError(c, err)
		return
	}

	metrics.IncImport(importType)
	respond.OK(c, result)
}

// fileImportResult is the file-import response: the merge result plus the
// storage key the raw upload was persisted under, so it can be fetched back
// via GET /transfer/uploads.
type fileImportResult struct {
	ImportResult
	StoredKey string `json:"storedKey"`
}

func (h *Handler) importFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "missing file upload", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds the 10MB upload limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds the 10MB upload limit", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)
	storageKey, size, mimeType, err := h.store.Save(c.Request.Context(), userID, fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		telemetry.Error("transfer.upload_store_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store upload", nil)
		return
	}
	telemetry.Info("transfer.upload_stored", map[string]any{
		"storageKey": storageKey,
		"sizeBytes":  size,
		"mimeType":   mimeType,
	})

	var session Session
	if raw := c.PostForm("session"); raw != "" {
		if mergeErr := json.Unmarshal([]byte(raw), &session); mergeErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid session payload", nil)
			return
		}
	}

	var result ImportResult
	if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".json") {
		result, err = MergeJSON(session, data)
	} else {
		text, extractErr := extract.TextFromBytes(c.Request.Context(), data, mimeType, fileHeader.Filename)
		if extractErr != nil {
			if errors.Is(extractErr, extract.ErrUnsupported) {
				respond.Error(c, http.StatusUnsupportedMediaType, "validation_error", "unsupported file type", nil)
				return
			}
			telemetry.Error("transfer.extract_failed", map[string]any{"error": extractErr.Error()})
			respond.Error(c, http.StatusUnprocessableEntity, "extract_error", "could not extract text from file", nil)
			return
		}
		result, err = MergeText(session, text)
	}
	if err != nil {
		h.importError(c, err)
		return
	}

	metrics.IncImport(ImportTypeFile)
	respond.OK(c, fileImportResult{ImportResult: result, StoredKey: storageKey})
}

// downloadUpload streams back a previously imported file. Keys are namespaced
// by the hashed user identity, so a caller can only reach their own uploads.
func (h *Handler) downloadUpload(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	userID := middleware.UserIDFromContext(c)
	if key == "" || !strings.HasPrefix(key, util.HashUserKey(userID)+"/") {
		respond.Error(c, http.StatusNotFound, "not_found", "upload not found", nil)
		return
	}

	rc, err := h.store.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, object.ErrInvalidKey) {
			respond.Error(c, http.StatusNotFound, "not_found", "upload not found", nil)
			return
		}
		telemetry.Error("transfer.upload_open_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open upload", nil)
		return
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxUploadBytes+1))
	if err != nil {
		telemetry.Error("transfer.upload_read_failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	writeAttachment(c, storedFileName(key), http.DetectContentType(data), data)
}

// storedFileName recovers the original upload name from a storage key by
// dropping the hashed namespace and the random prefix.
func storedFileName(key string) string {
	name := path.Base(key)
	if i := strings.Index(name, "_"); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	return name
}

func (h *Handler) importError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptyImport):
		respond.Error(c, http.StatusBadRequest, "validation_error", "import content is empty", nil)
	case errors.Is(err, ErrMalformedJSON):
		respond.Error(c, http.StatusBadRequest, "validation_error", "import file is not valid JSON", nil)
	case errors.Is(err, ErrNotImplemented):
		respond.Error(c, http.StatusNotImplemented, "not_implemented", "importer not available", nil)
	case errors.Is(err, ErrUnknownType):
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown import type", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "import failed", nil)
	}
}

func writeAttachment(c *gin.Context, fileName, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, contentType, body)
}
