// Package apiclient is the terminal's HTTP client for the portfolio API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/ports"
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
	Errors     []domain.ValidationError
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client calls the portfolio API at a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A nil httpClient uses a client with the default timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: domain.DefaultHTTPClientTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

func (c *Client) CV(ctx context.Context) (domain.CV, error) {
	var cv domain.CV
	err := c.do(ctx, http.MethodGet, "/api/cv", nil, &cv)
	return cv, err
}

func (c *Client) Journal(ctx context.Context) ([]domain.JournalEntry, error) {
	var entries []domain.JournalEntry
	err := c.do(ctx, http.MethodGet, "/api/journal", nil, &entries)
	return entries, err
}

func (c *Client) Profiles(ctx context.Context) (domain.ProfileSet, error) {
	var profiles domain.ProfileSet
	err := c.do(ctx, http.MethodGet, "/api/profiles", nil, &profiles)
	return profiles, err
}

func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	var resp domain.AskResponse
	if err := c.do(ctx, http.MethodPost, "/api/ask", domain.AskRequest{Question: question}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

func (c *Client) SubmitContact(ctx context.Context, req domain.ContactRequest) (domain.ContactReceipt, error) {
	var receipt domain.ContactReceipt
	err := c.do(ctx, http.MethodPost, "/api/contact", req, &receipt)
	return receipt, err
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, domain.MaxRequestBodySize*16))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var decoded struct {
			Message string                   `json:"message"`
			Errors  []domain.ValidationError `json:"errors"`
		}
		if json.Unmarshal(raw, &decoded) == nil {
			statusErr.Message = decoded.Message
			statusErr.Errors = decoded.Errors
		}
		return statusErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

var _ ports.PortfolioAPI = (*Client)(nil)
