package resumes

import "time"

// Resume is an uploaded resume file owned by a user. StorageKey is the
// opaque object-store path, never exposed as a public URL.
type Resume struct {
	ID         string
	UserID     string
	Name       string
	StorageKey string
	CreatedAt  time.Time
}
