// Package api is the HTTP client for the Orbit API. It carries the session
// cookie in a jar and echoes the anti-forgery token on every state-changing
// request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/orbitlabs/orbit/internal/auth"
	"github.com/orbitlabs/orbit/internal/models"
)

// APIError is a non-2xx response from the server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the Orbit API
type Client struct {
	baseURL string
	http    *http.Client

	mu   sync.Mutex
	csrf string
}

// New creates a client for the given base URL, e.g. http://localhost:3001
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

// Authenticate logs in and returns the session claims and expiry. The
// session cookie lands in the jar as a side effect.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.AuthenticateRequest{Email: email, Password: password}
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/authenticate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignUp creates an account and returns the claims subset and expiry
func (c *Client) SignUp(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/signup", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Reset drops the cached CSRF token, e.g. after a logout
func (c *Client) Reset() {
	c.mu.Lock()
	c.csrf = ""
	c.mu.Unlock()
}

// CSRFToken returns the session's anti-forgery token, fetching it on first
// use and caching it for the rest of the session.
func (c *Client) CSRFToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.csrf
	c.mu.Unlock()
	if token != "" {
		return token, nil
	}

	var resp struct {
		CSRFToken string `json:"csrfToken"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/csrf-token", nil, &resp); err != nil {
		return "", err
	}

	c.mu.Lock()
	c.csrf = resp.CSRFToken
	c.mu.Unlock()
	return resp.CSRFToken, nil
}

// Dashboard is the dashboard data payload
type Dashboard struct {
	SalesVolume  string          `json:"salesVolume"`
	NewCustomers string          `json:"newCustomers"`
	Refunds      string          `json:"refunds"`
	Graph        json.RawMessage `json:"graphData"`
}

// DashboardData fetches the dashboard payload
func (c *Client) DashboardData(ctx context.Context) (*Dashboard, error) {
	var resp Dashboard
	if err := c.do(ctx, http.MethodGet, "/api/dashboard-data", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Bio fetches the caller's bio
func (c *Client) Bio(ctx context.Context) (string, error) {
	var resp struct {
		Bio string `json:"bio"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/bio", nil, &resp); err != nil {
		return "", err
	}
	return resp.Bio, nil
}

// UpdateBio stores a new bio and returns the stored value
func (c *Client) UpdateBio(ctx context.Context, bio string) (string, error) {
	req := map[string]string{"bio": bio}
	var resp struct {
		Bio string `json:"bio"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/bio", req, &resp); err != nil {
		return "", err
	}
	return resp.Bio, nil
}

// Inventory lists the caller's inventory items
func (c *Client) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := c.do(ctx, http.MethodGet, "/api/inventory", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddInventoryItem creates an inventory item
func (c *Client) AddInventoryItem(ctx context.Context, req models.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	var resp struct {
		InventoryItem models.InventoryItem `json:"inventoryItem"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/inventory", req, &resp); err != nil {
		return nil, err
	}
	return &resp.InventoryItem, nil
}

// DeleteInventoryItem deletes a caller-owned item by id
func (c *Client) DeleteInventoryItem(ctx context.Context, id int) (*models.InventoryItem, error) {
	var resp struct {
		DeletedItem models.InventoryItem `json:"deletedItem"`
	}
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/inventory/%d", id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.DeletedItem, nil
}

// Users lists the user directory
func (c *Client) Users(ctx context.Context) ([]models.UserProfile, error) {
	var resp struct {
		Users []models.UserProfile `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateRole changes the caller's role and returns the server message
func (c *Client) UpdateRole(ctx context.Context, role models.Role) (string, error) {
	req := map[string]models.Role{"role": role}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPatch, "/api/user-role", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// do executes one request. Mutating verbs fetch and echo the CSRF token.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if method != http.MethodGet && path != "/api/authenticate" && path != "/api/signup" {
		token, err := c.CSRFToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set(auth.CSRFHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// A 403 may mean the CSRF secret rotated; drop the cache so the
		// next mutating call refetches.
		if resp.StatusCode == http.StatusForbidden {
			c.Reset()
		}

		apiErr := &APIError{Status: resp.StatusCode, Message: "request failed"}
		var msg struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&msg); err == nil && msg.Message != "" {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
