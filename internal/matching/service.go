package matching

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"jobtrack-backend/internal/extract"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/llm"
	"jobtrack-backend/internal/resumes"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/storage/object"
)

// MinResumeTextLength is the fewest extracted characters accepted before a
// prompt is built. Below this the file is treated as unreadable and no
// model call is made.
const MinResumeTextLength = 100

// maxResumeBytes bounds how much of a stored object is read for extraction.
const maxResumeBytes = 20 << 20

// Service runs the resume analysis and job match pipelines. Results are
// returned to the caller and never persisted.
type Service struct {
	Resumes *resumes.Service
	Jobs    jobs.Repo
	Store   object.ObjectStore
	LLM     llm.Client

	// ExtractText is swappable so pipelines can be tested without real
	// document fixtures. Defaults to extract.Text.
	ExtractText func(ctx context.Context, data []byte, mimeType, fileName string) (string, error)
}

// AnalyzeResume extracts the resume's text and asks the model for
// improvement suggestions.
func (s *Service) AnalyzeResume(ctx context.Context, userID, resumeID string) (string, error) {
	metrics.IncAnalyzeStarted()
	start := metrics.NowMillis()

	analysis, err := s.analyzeResume(ctx, userID, resumeID)
	metrics.ObserveAnalyzeDurationMs(metrics.NowMillis() - start)
	if err != nil {
		metrics.IncAnalyzeFailed()
		return "", err
	}
	metrics.IncAnalyzeCompleted()
	return analysis, nil
}

func (s *Service) analyzeResume(ctx context.Context, userID, resumeID string) (string, error) {
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return "", err
	}

	text, err := s.resumeText(ctx, resume)
	if err != nil {
		return "", err
	}

	analysis, err := s.LLM.Complete(ctx, llm.AnalyzePrompt(text))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	return analysis, nil
}

// MatchResumeToJob compares the resume's text against the job description
// and returns the model's match feedback. The resume must belong to the
// caller; the job is looked up by id alone.
func (s *Service) MatchResumeToJob(ctx context.Context, userID, resumeID, jobID string) (string, error) {
	metrics.IncMatchStarted()
	start := metrics.NowMillis()

	feedback, err := s.matchResumeToJob(ctx, userID, resumeID, jobID)
	metrics.ObserveMatchDurationMs(metrics.NowMillis() - start)
	if err != nil {
		metrics.IncMatchFailed()
		return "", err
	}
	metrics.IncMatchCompleted()
	return feedback, nil
}

func (s *Service) matchResumeToJob(ctx context.Context, userID, resumeID, jobID string) (string, error) {
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return "", err
	}

	job, err := s.Jobs.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}

	text, err := s.resumeText(ctx, resume)
	if err != nil {
		return "", err
	}

	feedback, err := s.LLM.Complete(ctx, llm.MatchPrompt(text, job.Description))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	return feedback, nil
}

// resumeText fetches the stored object and extracts its plain text,
// rejecting files that produce less than MinResumeTextLength characters.
func (s *Service) resumeText(ctx context.Context, resume resumes.Resume) (string, error) {
	rc, err := s.Store.Open(ctx, resume.StorageKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxResumeBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	extractFn := s.ExtractText
	if extractFn == nil {
		extractFn = extract.Text
	}

	// The storage key keeps the sanitized upload name, so its extension
	// survives renames of the display name.
	text, err := extractFn(ctx, data, "", resume.StorageKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableResume, err)
	}
	if len(strings.TrimSpace(text)) < MinResumeTextLength {
		return "", ErrUnreadableResume
	}
	return text, nil
}
