package users

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

// Repo defines persistence operations for users.
type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetBySubject(ctx context.Context, subjectID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	AttachSubject(ctx context.Context, userID, subjectID string) error
}
