package jobs

import "time"

// JobResponse is the outward-facing representation of a job.
type JobResponse struct {
	ID          string    `json:"id"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(job Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Position:    job.Position,
		Company:     job.Company,
		Status:      job.Status,
		Description: job.Description,
		CreatedAt:   job.CreatedAt,
	}
}
