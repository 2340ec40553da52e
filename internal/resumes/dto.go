package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url"`
}

func toResponse(item ListedResume) ResumeResponse {
	return ResumeResponse{
		ID:        item.Resume.ID,
		Name:      item.Resume.Name,
		CreatedAt: item.Resume.CreatedAt,
		URL:       item.URL,
	}
}
