// Package dealerinfo is an HTTP client for the dealer-info API, used by
// the dealerctl CLI and any other Go consumer of the service.
package dealerinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Typed errors mapped from API status codes.
var (
	ErrConflict     = errors.New("resource already exists")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
)

// Client is a minimal HTTP client for the dealer-info API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient constructs a client for the given base URL with sane defaults.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// SetToken attaches a session token sent as a Bearer credential on
// subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Dealer mirrors the API's dealer record.
type Dealer struct {
	ID             string `json:"id"`
	DealershipName string `json:"dealershipName"`
	DealerCode     string `json:"dealerCode"`
	Address        string `json:"address"`
	ContactPerson  string `json:"contactPerson"`
	ContactNumber  string `json:"contactNumber"`
	Pincode        string `json:"pincode"`
	City           string `json:"city"`
	District       string `json:"district"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Services       string `json:"services"`
	Email          string `json:"email"`
	Website        string `json:"website"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// ListFilter narrows ListDealers results. Zero-value fields are omitted.
type ListFilter struct {
	Name  string
	State string
	City  string
}

// Signup registers an admin account and returns a session token.
func (c *Client) Signup(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/admin/signup", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login verifies credentials and returns a session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/auth/admin/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListDealers retrieves dealers matching the filter.
func (c *Client) ListDealers(ctx context.Context, filter ListFilter) ([]Dealer, error) {
	q := url.Values{}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}
	if filter.State != "" {
		q.Set("state", filter.State)
	}
	if filter.City != "" {
		q.Set("city", filter.City)
	}
	path := "/dealers"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var dealers []Dealer
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &dealers); err != nil {
		return nil, err
	}
	return dealers, nil
}

// CreateDealer adds a new dealer record and returns it with its generated id.
func (c *Client) CreateDealer(ctx context.Context, dealer *Dealer) (*Dealer, error) {
	var created Dealer
	if err := c.doRequest(ctx, http.MethodPost, "/dealers", dealer, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateDealer applies the given fields to an existing dealer. Fields maps
// JSON field names to new values.
func (c *Client) UpdateDealer(ctx context.Context, id string, fields map[string]any) (*Dealer, error) {
	var updated Dealer
	if err := c.doRequest(ctx, http.MethodPut, "/dealers/"+url.PathEscape(id), fields, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteDealer removes a dealer permanently.
func (c *Client) DeleteDealer(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/dealers/"+url.PathEscape(id), nil, nil)
}

// States retrieves all known states.
func (c *Client) States(ctx context.Context) ([]string, error) {
	var states []string
	if err := c.doRequest(ctx, http.MethodGet, "/locations/states", nil, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// Districts retrieves the districts of a state.
func (c *Client) Districts(ctx context.Context, state string) ([]string, error) {
	var districts []string
	path := "/locations/states/" + url.PathEscape(state) + "/districts"
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &districts); err != nil {
		return nil, err
	}
	return districts, nil
}

// Cities retrieves the cities of a state+district pair.
func (c *Client) Cities(ctx context.Context, state, district string) ([]string, error) {
	var cities []string
	path := "/locations/states/" + url.PathEscape(state) + "/districts/" + url.PathEscape(district) + "/cities"
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}

// doRequest performs an HTTP request with a JSON payload and decodes the
// JSON response into result. Error statuses map to the package's typed
// errors with the server's message attached.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// statusError wraps an error response body into a typed error.
func statusError(code int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Message
	if msg == "" {
		msg = http.StatusText(code)
	}

	switch code {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	default:
		return fmt.Errorf("server error (%d): %s", code, msg)
	}
}
