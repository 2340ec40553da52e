package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	sharedauth "jobtrack-backend/internal/shared/auth"
)

// Service resolves verified credentials to canonical users, provisioning
// lazily on the first request from a given identity.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Resolve returns the user for the given claims. Lookup goes subject id
// first, then email: rows migrated from a prior auth provider keep their
// id and adopt the new subject instead of being duplicated.
func (s *Service) Resolve(ctx context.Context, claims sharedauth.Claims) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	subject := strings.TrimSpace(claims.Sub)
	if subject == "" {
		return User{}, errors.New("subject is required")
	}

	user, err := s.Repo.GetBySubject(ctx, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	email := strings.TrimSpace(strings.ToLower(claims.Email))
	if email != "" {
		user, err = s.Repo.GetByEmail(ctx, email)
		if err == nil {
			if attachErr := s.Repo.AttachSubject(ctx, user.ID, subject); attachErr != nil {
				return User{}, attachErr
			}
			user.SubjectID = subject
			return user, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return User{}, err
		}
	}

	now := time.Now().UTC()
	user = User{
		ID:         uuid.NewString(),
		SubjectID:  subject,
		Email:      email,
		Name:       claims.Name,
		PictureURL: claims.Picture,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
