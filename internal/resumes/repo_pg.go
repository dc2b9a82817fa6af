package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Resume content is stored as a
// single jsonb document so schema migrations are not needed per field.
type PGRepo struct {
	DB *sql.DB
}

type pgPayload struct {
	Data ResumeData  `json:"resumeData"`
	Meta SectionMeta `json:"sectionMeta"`
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO resumes (id, user_id, name, data, version, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	payload, err := json.Marshal(pgPayload{Data: rec.Data, Meta: rec.Meta})
	if err != nil {
		return fmt.Errorf("marshal resume payload: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, rec.ID, rec.UserID, rec.Name, payload, rec.Version, rec.CreatedAt, rec.UpdatedAt)
	return err
}

// Update replaces the stored document and bumps version/updated_at.
func (r *PGRepo) Update(ctx context.Context, rec Record) error {
	const query = `
UPDATE resumes
SET name = $1, data = $2, version = $3, updated_at = $4
WHERE id = $5 AND user_id = $6 AND deleted_at IS NULL`

	payload, err := json.Marshal(pgPayload{Data: rec.Data, Meta: rec.Meta})
	if err != nil {
		return fmt.Errorf("marshal resume payload: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, rec.Name, payload, rec.Version, rec.UpdatedAt, rec.ID, rec.UserID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Record, error) {
	const query = `
SELECT id, user_id, name, data, version, created_at, updated_at
FROM resumes
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID, userID))
}

// ListByUser returns resumes for a user, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	const query = `
SELECT id, user_id, name, data, version, created_at, updated_at
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY updated_at DESC
LIMIT $2 OFFSET $3`

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []Record{}
	for rows.Next() {
		rec, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Delete soft-deletes a resume.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = now()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	res, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveAutosave upserts the user's working snapshot.
func (r *PGRepo) SaveAutosave(ctx context.Context, snap Autosave) error {
	const query = `
INSERT INTO resume_autosaves (user_id, data, saved_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, saved_at = EXCLUDED.saved_at`

	payload, err := json.Marshal(pgPayload{Data: snap.Data, Meta: snap.Meta})
	if err != nil {
		return fmt.Errorf("marshal autosave payload: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, query, snap.UserID, payload, snap.SavedAt)
	return err
}

// GetAutosave returns the user's working snapshot.
func (r *PGRepo) GetAutosave(ctx context.Context, userID string) (Autosave, error) {
	const query = `
SELECT user_id, data, saved_at
FROM resume_autosaves
WHERE user_id = $1`

	var snap Autosave
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&snap.UserID, &raw, &snap.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Autosave{}, ErrNotFound
		}
		return Autosave{}, err
	}

	var payload pgPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Autosave{}, fmt.Errorf("unmarshal autosave payload: %w", err)
	}
	snap.Data = payload.Data
	snap.Meta = payload.Meta
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Record, error) {
	var rec Record
	var raw []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Name, &raw, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	var payload pgPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Record{}, fmt.Errorf("unmarshal resume payload: %w", err)
	}
	rec.Data = payload.Data
	rec.Meta = payload.Meta
	return rec, nil
}
