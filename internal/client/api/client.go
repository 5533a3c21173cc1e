// Package api is a thin HTTP client for the itemvault server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// User mirrors the server's user DTO.
type User struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	IsActive    bool   `json:"isActive"`
	IsSuperuser bool   `json:"isSuperuser"`
}

// Item mirrors the server's item DTO.
type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	OwnerID     string  `json:"ownerID"`
}

// Token mirrors the server's token DTO.
type Token struct {
	ID     string `json:"id"`
	Value  string `json:"value"`
	UserID string `json:"userID"`
}

// Client calls the server over HTTP. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API at baseURL (scheme and host, no trailing
// slash required).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type apiError struct {
	Error string `json:"error"`
}

func decodeError(resp *http.Response) error {
	var apiErr apiError
	body, _ := io.ReadAll(resp.Body)
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("server returned %s: %s", resp.Status, apiErr.Error)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Login exchanges email+password for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login/access-token", nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(email, password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var token Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Whoami returns the user the token resolves to.
func (c *Client) Whoami(ctx context.Context, token string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/login/test-token", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListItems returns the caller's items.
func (c *Client) ListItems(ctx context.Context, token string) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/items", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateItem creates an item owned by the caller.
func (c *Client) CreateItem(ctx context.Context, token, title string, description *string) (*Item, error) {
	var item Item
	in := map[string]any{"title": title}
	if description != nil {
		in["description"] = *description
	}
	if err := c.do(ctx, http.MethodPost, "/items", token, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an item by id.
func (c *Client) DeleteItem(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+id, token, nil, nil)
}
