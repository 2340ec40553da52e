package jobs

import "time"

// Job is a tracked job application owned by a user. Jobs are created and
// listed only; there is no update or delete surface.
type Job struct {
	ID          string
	UserID      string
	Position    string
	Company     string
	Status      string
	Description string
	CreatedAt   time.Time
}

// Lifecycle statuses a job record may carry.
const (
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusRejected     = "rejected"
	StatusOffer        = "offer"
	StatusHired        = "hired"
	StatusPending      = "pending"
)

var validStatuses = map[string]struct{}{
	StatusApplied:      {},
	StatusInterviewing: {},
	StatusRejected:     {},
	StatusOffer:        {},
	StatusHired:        {},
	StatusPending:      {},
}

// ValidStatus reports whether s is a known lifecycle status.
func ValidStatus(s string) bool {
	_, ok := validStatuses[s]
	return ok
}
