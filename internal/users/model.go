package users

import "time"

// User is the canonical application-level identity. SubjectID is the
// auth provider's stable subject; rows created before a provider switch
// may carry a different subject for the same email.
type User struct {
	ID         string    `json:"id"`
	SubjectID  string    `json:"-"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	PictureURL string    `json:"pictureUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
