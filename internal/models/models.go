package models

import "encoding/json"

// Stat keys as they appear in the stats map, normalized from the upstream
// hyphenated names.
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special_attack"
	StatSpecialDefense = "special_defense"
	StatSpeed          = "speed"
)

// Pokemon is the summary shape produced by list-mode fetches.
type Pokemon struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Image  string `json:"image"`
}

// PokemonDetail extends the summary with the fields resolved from the
// upstream detail and species records. Weight is kilograms, Height meters.
type PokemonDetail struct {
	Pokemon
	Types       []string       `json:"types"`
	Weight      float64        `json:"weight"`
	Height      float64        `json:"height"`
	Abilities   []string       `json:"abilities"`
	Stats       map[string]int `json:"stats"`
	Description string         `json:"description"`
}

// Meta carries pagination metadata in the paged envelope.
type Meta struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// PagedResponse is the envelope returned by the listing endpoint. Data holds
// summaries in list mode or a single detail in search mode. A nil Meta is the
// upstream-failure sentinel and serializes as an empty object, which keeps it
// distinguishable from the populated zero-count meta of an empty search
// result.
type PagedResponse struct {
	Data []any `json:"data"`
	Meta *Meta `json:"meta"`
}

// NewListResponse builds a list-mode envelope from summaries.
func NewListResponse(pokemons []Pokemon, meta Meta) PagedResponse {
	data := make([]any, 0, len(pokemons))
	for _, p := range pokemons {
		data = append(data, p)
	}
	return PagedResponse{Data: data, Meta: &meta}
}

// NewSearchResponse builds a single-result envelope from a resolved detail.
func NewSearchResponse(detail *PokemonDetail) PagedResponse {
	return PagedResponse{
		Data: []any{detail},
		Meta: &Meta{TotalCount: 1, TotalPages: 1, CurrentPage: 1},
	}
}

// EmptySearchResponse is the zero-result success envelope for a search that
// found nothing. Not to be confused with SentinelResponse.
func EmptySearchResponse() PagedResponse {
	return PagedResponse{
		Data: []any{},
		Meta: &Meta{TotalCount: 0, TotalPages: 0, CurrentPage: 1},
	}
}

// SentinelResponse is the envelope returned when the upstream list call does
// not succeed: empty data, empty meta object.
func SentinelResponse() PagedResponse {
	return PagedResponse{Data: []any{}}
}

// MarshalJSON renders a nil Meta as {} rather than null, preserving the
// sentinel envelope shape on the wire.
func (r PagedResponse) MarshalJSON() ([]byte, error) {
	type alias struct {
		Data []any `json:"data"`
		Meta any   `json:"meta"`
	}
	a := alias{Data: r.Data}
	if a.Data == nil {
		a.Data = []any{}
	}
	if r.Meta != nil {
		a.Meta = r.Meta
	} else {
		a.Meta = struct{}{}
	}
	return json.Marshal(a)
}

// User identifies the logged-in account.
type User struct {
	Username string `json:"username"`
}

// LoginResponse is the body returned on a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
