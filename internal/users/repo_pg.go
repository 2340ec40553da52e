package users

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, subject_id, email, name, picture_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())`
	// email is unique; empty values go in as NULL so they never collide.
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.SubjectID,
		nullableString(user.Email),
		nullableString(user.Name),
		nullableString(user.PictureURL),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, subject_id, email, name, picture_url, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetBySubject(ctx context.Context, subjectID string) (User, error) {
	const query = `
SELECT id, subject_id, email, name, picture_url, created_at, updated_at
FROM users
WHERE subject_id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, subjectID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, subject_id, email, name, picture_url, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) AttachSubject(ctx context.Context, userID, subjectID string) error {
	const query = `
UPDATE users
SET subject_id = $1, updated_at = now()
WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, subjectID, userID)
	return err
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	var email sql.NullString
	var name sql.NullString
	var pictureURL sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&user.ID,
		&user.SubjectID,
		&email,
		&name,
		&pictureURL,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if email.Valid {
		user.Email = email.String
	}
	if name.Valid {
		user.Name = name.String
	}
	if pictureURL.Valid {
		user.PictureURL = pictureURL.String
	}
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	} else {
		user.UpdatedAt = time.Now().UTC()
	}
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
