package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, user_id, position, company, status, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.UserID,
		job.Position,
		job.Company,
		job.Status,
		job.Description,
		job.CreatedAt,
	)
	return err
}

// GetByID fetches a job by primary key.
func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	const query = `
SELECT id, user_id, position, company, status, description, created_at
FROM jobs
WHERE id = $1
LIMIT 1`
	var job Job
	err := r.DB.QueryRowContext(ctx, query, jobID).Scan(
		&job.ID,
		&job.UserID,
		&job.Position,
		&job.Company,
		&job.Status,
		&job.Description,
		&job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// ListByUser lists a user's jobs, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Job, error) {
	const query = `
SELECT id, user_id, position, company, status, description, created_at
FROM jobs
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(
			&job.ID,
			&job.UserID,
			&job.Position,
			&job.Company,
			&job.Status,
			&job.Description,
			&job.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
