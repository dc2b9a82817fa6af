package resumes

import (
	"context"
	"time"
)

// Record is a stored resume owned by a user.
type Record struct {
	ID        string
	UserID    string
	Name      string
	Data      ResumeData
	Meta      SectionMeta
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Autosave is the single-slot working snapshot per user.
type Autosave struct {
	UserID  string
	Data    ResumeData
	Meta    SectionMeta
	SavedAt time.Time
}

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	GetByID(ctx context.Context, userID, resumeID string) (Record, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
	Delete(ctx context.Context, userID, resumeID string) error
	SaveAutosave(ctx context.Context, snap Autosave) error
	GetAutosave(ctx context.Context, userID string) (Autosave, error)
}
