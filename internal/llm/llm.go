package llm

import "context"

// Client abstracts text-generation providers. The returned text is
// free-form and passed through to callers unmodified.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
