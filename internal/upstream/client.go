// Package upstream talks to the PokeAPI, the external data provider behind
// the listing service. The provider is treated as opaque: this package only
// knows its three read endpoints and their raw response shapes.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://pokeapi.co/api/v2"

// ErrNotFound signals an upstream 404 for a record lookup.
var ErrNotFound = errors.New("upstream: not found")

// StatusError is returned for any other non-2xx upstream response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream: unexpected status %d from %s", e.Code, e.URL)
}

// Client is the read surface of the upstream provider.
type Client interface {
	ListPokemon(ctx context.Context, limit, offset int) (*ListPage, error)
	GetPokemon(ctx context.Context, idOrName string) (*PokemonRecord, error)
	GetSpecies(ctx context.Context, id int) (*SpeciesRecord, error)
}

// NamedResource is the upstream {name, url} pair.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListPage is the paged collection returned by /pokemon.
type ListPage struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// PokemonRecord is the primary record returned by /pokemon/{idOrName}.
// Weight is hectograms and Height decimeters, as the upstream ships them.
type PokemonRecord struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Weight    int           `json:"weight"`
	Height    int           `json:"height"`
	Stats     []StatSlot    `json:"stats"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Sprites   Sprites       `json:"sprites"`
}

// StatSlot is one entry of a record's stat list.
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// TypeSlot is one entry of a record's ordered type list.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of a record's ordered ability list.
type AbilitySlot struct {
	Ability NamedResource `json:"ability"`
}

// Sprites carries the one artwork URL the application uses.
type Sprites struct {
	Other struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// SpeciesRecord is the auxiliary description resource from
// /pokemon-species/{id}.
type SpeciesRecord struct {
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

// FlavorTextEntry is one per-language description entry.
type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// HTTPClient implements Client over plain HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client for the given base URL, falling back to the
// public PokeAPI when empty.
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) ListPokemon(ctx context.Context, limit, offset int) (*ListPage, error) {
	url := fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", c.baseURL, limit, offset)
	var page ListPage
	if err := c.getJSON(ctx, url, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *HTTPClient) GetPokemon(ctx context.Context, idOrName string) (*PokemonRecord, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, idOrName)
	var record PokemonRecord
	if err := c.getJSON(ctx, url, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) GetSpecies(ctx context.Context, id int) (*SpeciesRecord, error) {
	url := fmt.Sprintf("%s/pokemon-species/%d", c.baseURL, id)
	var record SpeciesRecord
	if err := c.getJSON(ctx, url, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, URL: url}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding upstream response: %w", err)
	}
	return nil
}
