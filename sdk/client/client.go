package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config represents the configuration for the playground client
type Config struct {
	// BaseURL is the base URL of the playground service
	BaseURL string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "http://localhost:8080",
		HTTPClient: http.DefaultClient,
		Timeout:    10 * time.Second,
	}
}

// Client is the playground service client
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new playground client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		config: config,
		client: client,
	}
}

// APIError is an error response from the service
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// CompileRequest represents a compile request
type CompileRequest struct {
	Source string `json:"source"`
}

// CompileResponse represents a compile response
type CompileResponse struct {
	Code       string   `json:"code"`
	Includes   []string `json:"includes"`
	Errors     []string `json:"errors"`
	Statements int      `json:"statements"`
}

// Compile compiles Zynk source and returns the generated code along with
// any parse errors
func (c *Client) Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if req.Source == "" {
		return nil, errors.New("source is required")
	}

	endpoint := fmt.Sprintf("%s/api/compile", c.config.BaseURL)
	var resp CompileResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// CreateSnippetRequest represents a snippet creation request
type CreateSnippetRequest struct {
	Title  string `json:"title,omitempty"`
	Source string `json:"source"`
}

// Snippet represents a stored snippet
type Snippet struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSnippetResponse represents a snippet creation response
type CreateSnippetResponse struct {
	Snippet *Snippet `json:"snippet"`
	Errors  []string `json:"errors"`
}

// CreateSnippet stores a program together with its generated code
func (c *Client) CreateSnippet(ctx context.Context, req *CreateSnippetRequest) (*CreateSnippetResponse, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if req.Source == "" {
		return nil, errors.New("source is required")
	}

	endpoint := fmt.Sprintf("%s/api/snippets", c.config.BaseURL)
	var resp CreateSnippetResponse
	if err := c.post(ctx, endpoint, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetSnippet returns a stored snippet by ID
func (c *Client) GetSnippet(ctx context.Context, id string) (*Snippet, error) {
	if id == "" {
		return nil, errors.New("id is required")
	}

	endpoint := fmt.Sprintf("%s/api/snippets/%s", c.config.BaseURL, id)
	var resp Snippet
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// ListSnippetsResponse represents a snippet list page
type ListSnippetsResponse struct {
	Snippets []Snippet `json:"snippets"`
	Total    int64     `json:"total"`
}

// ListSnippets lists stored snippets, newest first
func (c *Client) ListSnippets(ctx context.Context, offset, limit int) (*ListSnippetsResponse, error) {
	endpoint := fmt.Sprintf("%s/api/snippets?offset=%d&limit=%d", c.config.BaseURL, offset, limit)
	var resp ListSnippetsResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// DeleteSnippet removes a stored snippet by ID
func (c *Client) DeleteSnippet(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id is required")
	}

	endpoint := fmt.Sprintf("%s/api/snippets/%s", c.config.BaseURL, id)
	return c.delete(ctx, endpoint)
}

// post performs a POST request and unmarshals the response into resp
func (c *Client) post(ctx context.Context, endpoint string, req interface{}, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := checkStatus(httpResp); err != nil {
		return err
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// get performs a GET request and unmarshals the response into resp
func (c *Client) get(ctx context.Context, endpoint string, resp interface{}) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	if err := checkStatus(httpResp); err != nil {
		return err
	}

	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// delete performs a DELETE request
func (c *Client) delete(ctx context.Context, endpoint string) error {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	return checkStatus(httpResp)
}

// checkStatus converts a non-success response into an APIError
func checkStatus(httpResp *http.Response) error {
	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.NewDecoder(httpResp.Body).Decode(&apiErr); err != nil {
		return &APIError{
			StatusCode: httpResp.StatusCode,
			Message:    fmt.Sprintf("request failed with status code %d", httpResp.StatusCode),
		}
	}

	apiErr.StatusCode = httpResp.StatusCode
	return &apiErr
}
