package generator

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/shared/metrics"
	"roleready-backend/internal/shared/server/respond"
)

// Handler exposes content generation over HTTP.
type Handler struct {
	Gen *Generator
}

// NewHandler constructs a Handler.
func NewHandler(gen *Generator) *Handler {
	return &Handler{Gen: gen}
}

// RegisterRoutes attaches generator routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate", h.generate)
	rg.POST("/generate/detect", h.detect)
	rg.POST("/generate/filename", h.fileName)
}

func (h *Handler) generate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Section) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "section is required", nil)
		return
	}

	result := h.Gen.Generate(req)
	metrics.IncGenerate(strings.ToLower(strings.TrimSpace(req.Section)))
	respond.OK(c, result)
}

type detectRequest struct {
	Text string `json:"text"`
}

func (h *Handler) detect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	respond.OK(c, gin.H{"inputType": DetectInputType(req.Text)})
}

type fileNameRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

func (h *Handler) fileName(c *gin.Context) {
	var req fileNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	respond.OK(c, gin.H{"fileName": SmartFileName(req.Name, req.Title, time.Now().UTC())})
}
