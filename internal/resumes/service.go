package resumes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/shared/storage/object"
	"jobtrack-backend/internal/shared/telemetry"
)

// SignedURLTTL bounds how long a listed or freshly uploaded resume URL
// stays fetchable.
const SignedURLTTL = time.Hour

// Service coordinates resume records with their backing objects. The two
// stores share no transaction; multi-step operations write the object
// first and clean it up if the record step fails.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// ListedResume pairs a resume record with a short-lived fetch URL.
type ListedResume struct {
	Resume Resume
	URL    string
}

// Upload stores the file and records the resume, returning the record and
// a signed URL for immediate client use.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, string, error) {
	if fileName == "" {
		return Resume{}, "", fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}

	storageKey, _, _, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Resume{}, "", fmt.Errorf("store resume: %w", err)
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       fileName,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		s.cleanupObject(ctx, storageKey)
		return Resume{}, "", fmt.Errorf("record resume: %w", err)
	}

	url, err := s.Store.SignURL(ctx, storageKey, SignedURLTTL)
	if err != nil {
		return Resume{}, "", fmt.Errorf("sign resume url: %w", err)
	}
	return resume, url, nil
}

// List returns the user's resumes, newest first, each with a signed URL.
func (s *Service) List(ctx context.Context, userID string) ([]ListedResume, error) {
	records, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ListedResume, 0, len(records))
	for _, rec := range records {
		url, err := s.Store.SignURL(ctx, rec.StorageKey, SignedURLTTL)
		if err != nil {
			// A record whose object vanished still shows up, just without
			// a fetchable URL.
			telemetry.Error("resume.sign_url_failed", map[string]any{
				"resume_id": rec.ID,
				"error":     err.Error(),
			})
			url = ""
		}
		out = append(out, ListedResume{Resume: rec, URL: url})
	}
	return out, nil
}

// Get returns a resume after enforcing ownership.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if resume.UserID != userID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
}

// Delete removes the backing object and then the record. A missing object
// is treated as already deleted so the operation stays idempotent.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	resume, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(ctx, resume.StorageKey); err != nil {
		if !errors.Is(err, object.ErrNotFound) {
			return fmt.Errorf("delete resume object: %w", err)
		}
		telemetry.Info("resume.object_already_gone", map[string]any{
			"resume_id":   resume.ID,
			"storage_key": resume.StorageKey,
		})
	}

	return s.Repo.Delete(ctx, resumeID)
}

// ReplaceInput carries the optional pieces of a resume update.
type ReplaceInput struct {
	NewName  string
	File     io.Reader
	FileName string
}

// Replace updates a resume's display name and/or backing file. The new
// object is written first, the record second, and the old object is
// removed last; a failed record update deletes the new object so no
// orphan is left pointing at nothing.
func (s *Service) Replace(ctx context.Context, userID, resumeID string, in ReplaceInput) (Resume, error) {
	resume, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	oldKey := ""
	if in.File != nil {
		if in.FileName == "" {
			return Resume{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
		}
		newKey, _, _, err := s.Store.Save(ctx, userID, in.FileName, in.File)
		if err != nil {
			return Resume{}, fmt.Errorf("store replacement: %w", err)
		}
		oldKey = resume.StorageKey
		resume.StorageKey = newKey
	}
	if in.NewName != "" {
		resume.Name = in.NewName
	}

	if err := s.Repo.Update(ctx, resume); err != nil {
		if oldKey != "" {
			s.cleanupObject(ctx, resume.StorageKey)
		}
		return Resume{}, fmt.Errorf("update resume record: %w", err)
	}

	if oldKey != "" {
		s.cleanupObject(ctx, oldKey)
	}
	return resume, nil
}

// cleanupObject is best-effort compensation; failures are logged, not returned.
func (s *Service) cleanupObject(ctx context.Context, storageKey string) {
	if err := s.Store.Delete(ctx, storageKey); err != nil && !errors.Is(err, object.ErrNotFound) {
		telemetry.Error("resume.cleanup_failed", map[string]any{
			"storage_key": storageKey,
			"error":       err.Error(),
		})
	}
}
