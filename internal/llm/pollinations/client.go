package pollinations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"jobtrack-backend/internal/llm"
)

const (
	defaultBaseURL = "https://text.pollinations.ai"

	// maxResponseBytes caps how much completion text is read; the endpoint
	// publishes no size contract.
	maxResponseBytes = 1 << 20

	// maxPromptBytes bounds the prompt because it travels as a URL path
	// segment.
	maxPromptBytes = 64 << 10
)

// Client calls the Pollinations text-generation endpoint: a single GET
// with the prompt percent-encoded into the path, plain text back.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Pollinations client. baseURL may be empty.
func NewClient(baseURL string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	timeout := 60 * time.Second
	if raw := strings.TrimSpace(os.Getenv("LLM_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete sends the prompt and returns the raw completion text. One
// blocking round trip, no retry, no streaming.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("prompt must not be empty")
	}
	if len(prompt) > maxPromptBytes {
		return "", fmt.Errorf("prompt too large: %d bytes", len(prompt))
	}

	endpoint := c.baseURL + "/prompt/" + url.PathEscape(prompt)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", fmt.Errorf("completion request timeout: %w", err)
		}
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	// Status must be checked before the body is trusted.
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read completion: %w", err)
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "", errors.New("completion endpoint returned empty response")
	}
	return text, nil
}

var _ llm.Client = (*Client)(nil)
