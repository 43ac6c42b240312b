// Package api is the typed client of the listing service, the counterpart of
// the server's HTTP contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is used when POKEDEX_API_URL is unset.
const DefaultBaseURL = "http://localhost:3000"

// ErrNotFound signals a 404 from the detail endpoint.
var ErrNotFound = errors.New("pokemon not found")

// ErrUnauthorized signals rejected credentials.
var ErrUnauthorized = errors.New("invalid credentials")

// Pokemon mirrors the summary entries of the paged envelope.
type Pokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Image  string `json:"image"`
}

// PokemonDetail mirrors the detail shape.
type PokemonDetail struct {
	Pokemon
	Types       []string       `json:"types"`
	Weight      float64        `json:"weight"`
	Height      float64        `json:"height"`
	Abilities   []string       `json:"abilities"`
	Stats       map[string]int `json:"stats"`
	Description string         `json:"description"`
}

// Meta mirrors the envelope's pagination metadata. The upstream-failure
// sentinel decodes to the zero value with CurrentPage 0, which no successful
// response produces.
type Meta struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// PagedResponse is the decoded envelope.
type PagedResponse struct {
	Data []Pokemon `json:"data"`
	Meta Meta      `json:"meta"`
}

// LoginResponse is the decoded login body.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Client calls the listing service. All methods honor context cancellation
// so a superseded request can be abandoned.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL; empty falls back to
// POKEDEX_API_URL and then the local default.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("POKEDEX_API_URL")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// GetAll fetches one page of the listing.
func (c *Client) GetAll(ctx context.Context, page, limit int) (*PagedResponse, error) {
	endpoint := fmt.Sprintf("%s/pokemons?page=%d&limit=%d", c.baseURL, page, limit)
	var result PagedResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search performs a single-shot name or number search.
func (c *Client) Search(ctx context.Context, term string) (*PagedResponse, error) {
	endpoint := fmt.Sprintf("%s/pokemons?search=%s", c.baseURL, url.QueryEscape(term))
	var result PagedResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByID fetches one detail by numeric id or name.
func (c *Client) GetByID(ctx context.Context, id string) (*PokemonDetail, error) {
	endpoint := fmt.Sprintf("%s/pokemons/%s", c.baseURL, url.PathEscape(id))
	var result PokemonDetail
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByNumber is GetByID for a numeric identifier.
func (c *Client) GetByNumber(ctx context.Context, id int) (*PokemonDetail, error) {
	return c.GetByID(ctx, strconv.Itoa(id))
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var result LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
