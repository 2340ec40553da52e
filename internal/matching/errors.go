package matching

import "errors"

var (
	// ErrUnreadableResume means the stored file yielded too little text to
	// be worth sending to the model.
	ErrUnreadableResume = errors.New("resume text is too short or unreadable")
	// ErrCompletion wraps upstream model failures.
	ErrCompletion = errors.New("completion failed")
	// ErrStorage wraps object store failures other than a missing object.
	ErrStorage = errors.New("storage unavailable")
)
