package resumes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"roleready-backend/internal/shared/metrics"
)

// Service contains business logic for stored resumes.
type Service struct {
	Repo Repo
}

// Create stores a new resume and returns the record.
func (s *Service) Create(ctx context.Context, userID, name string, data ResumeData, meta SectionMeta) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Untitled resume"
	}

	meta.Normalize()
	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Data:      data,
		Meta:      meta,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Save replaces a stored resume's content and bumps its version.
func (s *Service) Save(ctx context.Context, userID, resumeID, name string, data ResumeData, meta SectionMeta) (Record, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(resumeID) == "" {
		return Record{}, ErrInvalidInput
	}

	start := time.Now()
	existing, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Record{}, err
	}

	if name = strings.TrimSpace(name); name == "" {
		name = existing.Name
	}

	meta.Normalize()
	existing.Name = name
	existing.Data = data
	existing.Meta = meta
	existing.Version++
	existing.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return Record{}, err
	}
	metrics.ObserveResumeSaveDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return existing, nil
}

// Get returns a stored resume.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Record, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(resumeID) == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns stored resumes for a user.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete removes a stored resume.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(resumeID) == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userID, resumeID)
}

// Autosave overwrites the user's working snapshot.
func (s *Service) Autosave(ctx context.Context, userID string, data ResumeData, meta SectionMeta) (Autosave, error) {
	if strings.TrimSpace(userID) == "" {
		return Autosave{}, ErrInvalidInput
	}
	meta.Normalize()
	snap := Autosave{
		UserID:  userID,
		Data:    data,
		Meta:    meta,
		SavedAt: time.Now().UTC(),
	}
	if err := s.Repo.SaveAutosave(ctx, snap); err != nil {
		return Autosave{}, err
	}
	return snap, nil
}

// GetAutosave returns the user's working snapshot.
func (s *Service) GetAutosave(ctx context.Context, userID string) (Autosave, error) {
	if strings.TrimSpace(userID) == "" {
		return Autosave{}, ErrInvalidInput
	}
	return s.Repo.GetAutosave(ctx, userID)
}
