package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, name, storage_key, created_at)
VALUES ($1, $2, $3, $4, $5)`
	var name sql.NullString
	if resume.Name != "" {
		name = sql.NullString{String: resume.Name, Valid: true}
	}
	_, err := r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		name,
		resume.StorageKey,
		resume.CreatedAt,
	)
	return err
}

// GetByID fetches a resume by primary key.
func (r *PGRepo) GetByID(ctx context.Context, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, name, storage_key, created_at
FROM resumes
WHERE id = $1
LIMIT 1`
	var resume Resume
	var name sql.NullString
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&resume.ID,
		&resume.UserID,
		&name,
		&resume.StorageKey,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if name.Valid {
		resume.Name = name.String
	}
	return resume, nil
}

// ListByUser lists a user's resumes, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT id, user_id, name, storage_key, created_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		var name sql.NullString
		if err := rows.Scan(
			&resume.ID,
			&resume.UserID,
			&name,
			&resume.StorageKey,
			&resume.CreatedAt,
		); err != nil {
			return nil, err
		}
		if name.Valid {
			resume.Name = name.String
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update rewrites the mutable fields of a resume record.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET name = $1, storage_key = $2
WHERE id = $3`
	var name sql.NullString
	if resume.Name != "" {
		name = sql.NullString{String: resume.Name, Valid: true}
	}
	res, err := r.DB.ExecContext(ctx, query, name, resume.StorageKey, resume.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume record.
func (r *PGRepo) Delete(ctx context.Context, resumeID string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, resumeID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
