package ats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roleready-backend/internal/shared/metrics"
	"roleready-backend/internal/shared/server/respond"
)

// Handler exposes the keyword matcher over HTTP.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches ATS routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/match", h.match)
	rg.GET("/ats/keywords", h.keywords)
}

type matchRequest struct {
	Skills         []string `json:"skills"`
	JobDescription string   `json:"jobDescription"`
	Tone           string   `json:"tone"`
	Length         string   `json:"length"`
}

type matchResponse struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := Match(req.Skills, req.JobDescription)
	if err != nil {
		if errors.Is(err, ErrEmptyJobDescription) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Paste a job description before matching", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute match", nil)
		return
	}

	metrics.IncMatch()
	respond.OK(c, matchResponse{
		Matched:         result.Matched,
		Missing:         result.Missing,
		Score:           result.Score,
		Recommendations: Recommendations(result, req.Tone, req.Length),
	})
}

func (h *Handler) keywords(c *gin.Context) {
	respond.OK(c, gin.H{"keywords": ReferenceKeywords()})
}
