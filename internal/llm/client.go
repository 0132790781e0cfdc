package llm

import (
	"context"
	"fmt"
	"time"
)

// Client is the hosted text-generation boundary. Implementations do not retry;
// callers decide what to fall back to when Generate fails.
type Client interface {
	Generate(ctx context.Context, prompt string, maxOutputTokens int, temperature float64) (string, error)
}

// APIError is a non-2xx response from a generation provider.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API request failed with status %d: %s", e.Provider, e.StatusCode, e.Body)
}

type timeoutClient struct {
	next    Client
	timeout time.Duration
}

// WithTimeout bounds every Generate call on next. A non-positive timeout
// returns next unchanged.
func WithTimeout(next Client, timeout time.Duration) Client {
	if timeout <= 0 {
		return next
	}
	return &timeoutClient{next: next, timeout: timeout}
}

func (c *timeoutClient) Generate(ctx context.Context, prompt string, maxOutputTokens int, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.next.Generate(ctx, prompt, maxOutputTokens, temperature)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("generation timed out after %s: %w", c.timeout, err)
		}
		return "", err
	}
	return text, nil
}
