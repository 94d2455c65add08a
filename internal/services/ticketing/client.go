package ticketing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a thin HTTP client for the remote ticketing REST API. Every call
// is a single attempt with a request timeout; retry policy belongs to the
// caller (the gateway deliberately has none).
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given workspace domain and API key.
// The domain is the bare subdomain, e.g. "acme" for acme.freshdesk.com.
func NewClient(domain, apiKey string) *Client {
	return &Client{
		baseURL: fmt.Sprintf("https://%s.freshdesk.com/api/v2", domain),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a client against an explicit base URL.
// Used by tests to point at a local server.
func NewClientWithBaseURL(baseURL, apiKey string) *Client {
	c := NewClient("", apiKey)
	c.baseURL = baseURL
	return c
}

// Remote wire shapes. Status and priority are integer coded.
type remoteTicket struct {
	ID              int64           `json:"id"`
	Subject         string          `json:"subject"`
	DescriptionText string          `json:"description_text"`
	Status          int             `json:"status"`
	Priority        int             `json:"priority"`
	GroupID         int64           `json:"group_id"`
	Tags            []string        `json:"tags"`
	Requester       remoteRequester `json:"requester"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type remoteRequester struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type remoteGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type remoteAgent struct {
	ID      int64 `json:"id"`
	Contact struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"contact"`
}

// listTickets issues GET /tickets with the given query values.
func (c *Client) listTickets(ctx context.Context, query url.Values) ([]remoteTicket, error) {
	var tickets []remoteTicket
	path := "/tickets"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// getTicket issues GET /tickets/{id}.
func (c *Client) getTicket(ctx context.Context, id int64) (*remoteTicket, error) {
	var ticket remoteTicket
	if err := c.do(ctx, http.MethodGet, "/tickets/"+strconv.FormatInt(id, 10), nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// listGroups issues GET /groups.
func (c *Client) listGroups(ctx context.Context) ([]remoteGroup, error) {
	var groups []remoteGroup
	if err := c.do(ctx, http.MethodGet, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// listAgents issues GET /agents.
func (c *Client) listAgents(ctx context.Context) ([]remoteAgent, error) {
	var agents []remoteAgent
	if err := c.do(ctx, http.MethodGet, "/agents", nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// updateTicket issues PUT /tickets/{id} with the numeric status code.
func (c *Client) updateTicket(ctx context.Context, id int64, statusCode int) error {
	body := map[string]int{"status": statusCode}
	return c.do(ctx, http.MethodPut, "/tickets/"+strconv.FormatInt(id, 10), body, nil)
}

// addNote issues POST /tickets/{id}/notes.
func (c *Client) addNote(ctx context.Context, id int64, text string, private bool) error {
	body := map[string]interface{}{
		"body":    text,
		"private": private,
	}
	return c.do(ctx, http.MethodPost, "/tickets/"+strconv.FormatInt(id, 10)+"/notes", body, nil)
}

// do runs one authenticated request, encoding body as JSON and decoding the
// response into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	// The API authenticates with Basic auth: the key as username, any
	// non-empty password.
	req.SetBasicAuth(c.apiKey, "X")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ticketing API returned %s for %s %s", resp.Status, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
