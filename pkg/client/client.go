// Package client is a typed HTTP client for the resume API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resume api: %d %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient talks to RESUME_API_URL, or a local server when unset.
func NewClient() *Client {
	base := os.Getenv("RESUME_API_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return NewClientWithBaseURL(base)
}

func NewClientWithBaseURL(base string) *Client {
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 90 * time.Second}}
}

type envelope struct {
	Resume *domain.Resume `json:"resume"`
	Error  string         `json:"error"`
}

// Fetch returns the user's saved resume, or nil when there is none.
func (c *Client) Fetch(ctx context.Context, userID string) (*domain.Resume, error) {
	q := url.Values{"userId": {userID}}
	resp, err := c.do(ctx, http.MethodGet, "/api/resumes?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(resp, &env); err != nil {
		return nil, err
	}
	return env.Resume, nil
}

// Save stores content as the user's resume and returns the stored record.
func (c *Client) Save(ctx context.Context, userID string, content model.Content) (*domain.Resume, error) {
	body, err := json.Marshal(struct {
		UserID string `json:"userId"`
		model.Content
	}{UserID: userID, Content: content})
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/api/resumes", body)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(resp, &env); err != nil {
		return nil, err
	}
	return env.Resume, nil
}

// Preview returns the stored resume rendered as HTML. An empty variant uses
// the saved template.
func (c *Client) Preview(ctx context.Context, userID string, variant model.Template) (string, error) {
	b, err := c.do(ctx, http.MethodGet, "/api/resumes/preview?"+documentQuery(userID, variant), nil)
	return string(b), err
}

// Export returns the stored resume as PDF.
func (c *Client) Export(ctx context.Context, userID string, variant model.Template) ([]byte, error) {
	return c.do(ctx, http.MethodGet, "/api/resumes/export?"+documentQuery(userID, variant), nil)
}

func documentQuery(userID string, variant model.Template) string {
	q := url.Values{"userId": {userID}}
	if variant != "" {
		q.Set("template", string(variant))
	}
	return q.Encode()
}

// do sends one request; there is no retry, a failed save is reported as is.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var env envelope
		if json.Unmarshal(rb, &env) == nil && env.Error != "" {
			apiErr.Message = env.Error
		}
		return nil, apiErr
	}
	return rb, nil
}
