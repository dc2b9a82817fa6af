package resumes

import "time"

// RecordResponse is the outward-facing representation of a stored resume.
type RecordResponse struct {
	ResumeID  string       `json:"resumeId"`
	Name      string       `json:"name"`
	Data      *ResumeData  `json:"data,omitempty"`
	Meta      *SectionMeta `json:"meta,omitempty"`
	Version   int          `json:"version"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func toResponse(rec Record, includeData bool) RecordResponse {
	resp := RecordResponse{
		ResumeID:  rec.ID,
		Name:      rec.Name,
		Version:   rec.Version,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if includeData {
		data := rec.Data
		meta := rec.Meta
		resp.Data = &data
		resp.Meta = &meta
	}
	return resp
}
