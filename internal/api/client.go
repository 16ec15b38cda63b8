// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the task service REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/taskdeck/internal/model"
)

// Configuration constants for the task API.
const (
	// DefaultBaseURL is the base URL used when no configuration is present.
	DefaultBaseURL = "http://localhost:8001/api"

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// sharedHTTPClient is the pooled HTTP client for all task API requests.
// It deliberately sets no Timeout: the client performs no deadline
// enforcement beyond the transport defaults, and callers bound requests
// with a context where they need to.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// =============================================================================
// FILTERS
// =============================================================================

// TaskFilters shapes a list query. Zero values are omitted from the query
// string entirely; all set filters apply conjunctively, and any finer
// matching semantics (substring search, sort tie-breaks) are server-defined.
type TaskFilters struct {
	// Completed filters by completion state. Nil means both states.
	Completed *bool

	// Priority filters to one of "high", "medium", "low".
	Priority string

	// Search is free text the server matches against title and description.
	Search string

	// Sort is one of "created_at", "priority", "title". Empty means the
	// server default of newest first.
	Sort string
}

// query encodes the filters, omitting unset dimensions.
func (f TaskFilters) query() string {
	params := url.Values{}
	if f.Completed != nil {
		params.Set("completed", strconv.FormatBool(*f.Completed))
	}
	if f.Priority != "" {
		params.Set("priority", f.Priority)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the task service. It holds no state beyond its
// configuration: every call is a single request with no retries and no
// caching, and responses are decoded as-is without validation beyond the
// JSON parse.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		userAgent:  "taskdeck/" + Version,
	}
}

// WithBaseURL sets a custom base URL.
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = strings.TrimSuffix(url, "/")
	return c
}

// WithHTTPClient sets a custom HTTP client (used by tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Version is the client version reported in the User-Agent header.
// Overridden at build time alongside the main package version.
var Version = "0.1.0"

// =============================================================================
// TASK OPERATIONS
// =============================================================================

// GetTasks fetches the task list for the given filters, in server order.
//
// The request is an uncached read: the Cache-Control header opts out of any
// intermediary caching so the list reflects the backend's current state.
func (c *Client) GetTasks(ctx context.Context, filters TaskFilters) ([]model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/tasks"+filters.query(), nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	c.setHeaders(req)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &FetchError{Status: resp.StatusCode}
	}

	var tasks []model.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return tasks, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, id int) (*model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.taskURL(id), nil)
	if err != nil {
		return nil, &NotFoundError{Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NotFoundError{Err: err}
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, &NotFoundError{Status: resp.StatusCode, Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &NotFoundError{Status: resp.StatusCode}
	}

	var task model.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, &NotFoundError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &task, nil
}

// CreateTask creates a task from a draft and returns the created record
// including the server-assigned id and timestamps.
func (c *Client) CreateTask(ctx context.Context, draft model.TaskDraft) (*model.Task, error) {
	resp, body, err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/tasks", draft)
	if err != nil {
		return nil, &CreateError{Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &CreateError{Status: resp.StatusCode}
	}

	var task model.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, &CreateError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &task, nil
}

// UpdateTask sends the provided fields for the task with the given id and
// returns the full updated record.
func (c *Client) UpdateTask(ctx context.Context, id int, patch model.TaskPatch) (*model.Task, error) {
	resp, body, err := c.doJSON(ctx, http.MethodPut, c.taskURL(id), patch)
	if err != nil {
		return nil, &UpdateError{Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &UpdateError{Status: resp.StatusCode}
	}

	var task model.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, &UpdateError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &task, nil
}

// DeleteTask deletes the task with the given id. The success response carries
// no body.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.taskURL(id), nil)
	if err != nil {
		return &DeleteError{Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &DeleteError{Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseSize))

	if !isSuccess(resp.StatusCode) {
		return &DeleteError{Status: resp.StatusCode}
	}
	return nil
}

// ToggleTaskCompletion asks the server to flip the task's completed flag and
// returns the updated record.
func (c *Client) ToggleTaskCompletion(ctx context.Context, id int) (*model.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.taskURL(id)+"/complete", nil)
	if err != nil {
		return nil, &ToggleError{Err: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ToggleError{Err: err}
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, &ToggleError{Status: resp.StatusCode, Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &ToggleError{Status: resp.StatusCode}
	}

	var task model.Task
	if err := json.Unmarshal(body, &task); err != nil {
		return nil, &ToggleError{Status: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return &task, nil
}

// =============================================================================
// REQUEST HELPERS
// =============================================================================

// doJSON marshals the body, performs the request, and reads the response.
// The caller interprets the status code.
func (c *Client) doJSON(ctx context.Context, method, requestURL string, reqBody any) (*http.Response, []byte, error) {
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}

func (c *Client) taskURL(id int) string {
	return fmt.Sprintf("%s/tasks/%d", c.baseURL, id)
}

// setHeaders sets the common headers for task API requests.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limitedReader := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", MaxResponseSize)
	}
	return body, nil
}

// isSuccess reports whether the status code is in the 2xx range.
func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
