package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for jobs.
type Service struct {
	Repo Repo
}

// CreateInput carries the fields of a job creation request.
type CreateInput struct {
	Position    string
	Company     string
	Status      string
	Description string
}

// Create validates and records a new job for the user.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Job, error) {
	in.Position = strings.TrimSpace(in.Position)
	in.Company = strings.TrimSpace(in.Company)
	in.Status = strings.ToLower(strings.TrimSpace(in.Status))

	if in.Position == "" {
		return Job{}, fmt.Errorf("%w: position is required", ErrInvalidInput)
	}
	if in.Company == "" {
		return Job{}, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if in.Status == "" {
		in.Status = StatusApplied
	}
	if !ValidStatus(in.Status) {
		return Job{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	job := Job{
		ID:          uuid.NewString(),
		UserID:      userID,
		Position:    in.Position,
		Company:     in.Company,
		Status:      in.Status,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// List returns the user's jobs, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Job, error) {
	return s.Repo.ListByUser(ctx, userID)
}
