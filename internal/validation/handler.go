package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/resumes"
	"roleready-backend/internal/shared/server/respond"
)

// Handler exposes resume validation over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches validation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/validation", h.validate)
}

type validateRequest struct {
	Data resumes.ResumeData   `json:"data"`
	Meta *resumes.SectionMeta `json:"meta"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	meta := resumes.DefaultSectionMeta()
	if req.Meta != nil {
		meta = *req.Meta
	}

	result := Validate(req.Data, meta)
	respond.OK(c, gin.H{
		"isValid":     result.IsValid,
		"errors":      result.Errors,
		"warnings":    result.Warnings,
		"exportReady": result.IsValid,
	})
}
