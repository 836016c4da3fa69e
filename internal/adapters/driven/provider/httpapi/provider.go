// Package httpapi provides an entity store backed by a remote
// directory API. It is used when the college list is served by a
// central backend instead of a local database.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/collegedex/collegedex-cli/internal/core/domain"
	"github.com/collegedex/collegedex-cli/internal/core/ports/driven"
	"github.com/collegedex/collegedex-cli/internal/logger"
)

const (
	// ProactiveRate throttles outgoing requests (requests per second)
	// so a busy TUI session cannot hammer the directory API.
	ProactiveRate = 4

	// requestTimeout bounds a single API call.
	requestTimeout = 15 * time.Second
)

// Ensure Client implements the interface.
var _ driven.EntityStore = (*Client)(nil)

// Client is an EntityStore implementation over the directory HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client for a directory API base URL, such as
// "https://directory.example.org/api".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// ListColleges fetches all college records.
func (c *Client) ListColleges(ctx context.Context) ([]domain.Entity, error) {
	var colleges []domain.Entity
	if err := c.getJSON(ctx, "/colleges", &colleges); err != nil {
		return nil, fmt.Errorf("listing colleges: %w", err)
	}
	logger.Debug("API returned %d colleges", len(colleges))
	return colleges, nil
}

// ListCourses fetches the course records for a college.
func (c *Client) ListCourses(ctx context.Context, collegeID string) ([]domain.Entity, error) {
	var courses []domain.Entity
	err := c.getJSON(ctx, "/colleges/"+collegeID+"/courses", &courses)
	if err != nil {
		return nil, fmt.Errorf("listing courses for %s: %w", collegeID, err)
	}
	return courses, nil
}

// UpsertCollege pushes a college record to the directory API.
func (c *Client) UpsertCollege(ctx context.Context, college domain.Entity, courses []domain.Entity) error {
	payload := map[string]any{
		"college": college,
	}
	if courses != nil {
		payload["courses"] = courses
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding college: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/colleges", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("upserting college: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("upserting college: %w", statusError(resp))
	}
	return nil
}

// DeleteCollege removes a college via the directory API.
func (c *Client) DeleteCollege(ctx context.Context, collegeID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/colleges/"+collegeID, nil)
	if err != nil {
		return fmt.Errorf("deleting college: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("deleting college: %w", statusError(resp))
	}
	return nil
}

// Close releases resources. The underlying transport needs none.
func (c *Client) Close() error {
	return nil
}

// getJSON performs a rate-limited GET and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// do waits for the rate limiter, then issues the request.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func statusError(resp *http.Response) error {
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}

// drain discards and closes the response body so the connection can
// be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
