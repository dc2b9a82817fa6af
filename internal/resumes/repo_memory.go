package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu        sync.RWMutex
	records   map[string][]Record // userID -> resumes
	autosaves map[string]Autosave // userID -> snapshot
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records:   make(map[string][]Record),
		autosaves: make(map[string]Autosave),
	}
}

// Create stores a new resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.UserID] = append(r.records[rec.UserID], rec)
	return nil
}

// Update replaces a stored resume by ID.
func (r *MemoryRepo) Update(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.records[rec.UserID]
	for i := range recs {
		if recs[i].ID == rec.ID {
			recs[i] = rec
			r.records[rec.UserID] = recs
			return nil
		}
	}
	return ErrNotFound
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records[userID] {
		if rec.ID == resumeID {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

// ListByUser returns resumes for a user, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userRecs := r.records[userID]
	r.mu.RUnlock()

	if len(userRecs) == 0 || offset >= len(userRecs) {
		return []Record{}, nil
	}

	recs := make([]Record, len(userRecs))
	copy(recs, userRecs)
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
	})

	end := len(recs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return recs[offset:end], nil
}

// Delete removes a resume by ID.
func (r *MemoryRepo) Delete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	recs := r.records[userID]
	for i := range recs {
		if recs[i].ID == resumeID {
			r.records[userID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// SaveAutosave overwrites the user's working snapshot.
func (r *MemoryRepo) SaveAutosave(ctx context.Context, snap Autosave) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.autosaves[snap.UserID] = snap
	return nil
}

// GetAutosave returns the user's working snapshot.
func (r *MemoryRepo) GetAutosave(ctx context.Context, userID string) (Autosave, error) {
	if err := ctx.Err(); err != nil {
		return Autosave{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap, ok := r.autosaves[userID]
	if !ok {
		return Autosave{}, ErrNotFound
	}
	return snap, nil
}
