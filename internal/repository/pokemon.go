// Package repository reshapes the upstream provider's records into the
// application's paged envelope and detail shapes.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Billy-Davies-2/pokedex-ui/internal/logger"
	"github.com/Billy-Davies-2/pokedex-ui/internal/models"
	"github.com/Billy-Davies-2/pokedex-ui/internal/upstream"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20

	artworkURLFmt = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"
)

// ErrNotFound signals that no pokemon exists for the requested identifier.
var ErrNotFound = errors.New("pokemon not found")

// PokemonRepository resolves list pages, searches and detail lookups against
// the upstream client. It holds no state; every call is independent.
type PokemonRepository struct {
	upstream upstream.Client
}

func New(client upstream.Client) *PokemonRepository {
	return &PokemonRepository{upstream: client}
}

// FindAll returns one translated page of the upstream collection. When the
// upstream call returns a non-2xx status the sentinel envelope (empty data,
// empty meta) is returned with a nil error so callers can degrade instead of
// failing. Transport-level errors still propagate.
func (r *PokemonRepository) FindAll(ctx context.Context, page, limit int) (models.PagedResponse, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	listing, err := r.upstream.ListPokemon(ctx, limit, offset)
	if err != nil {
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) || errors.Is(err, upstream.ErrNotFound) {
			logger.Warn("Upstream list call failed, returning sentinel envelope", "error", err)
			return models.SentinelResponse(), nil
		}
		return models.PagedResponse{}, err
	}

	pokemons := make([]models.Pokemon, 0, len(listing.Results))
	for _, res := range listing.Results {
		id, err := idFromURL(res.URL)
		if err != nil {
			logger.Warn("Skipping upstream entry with unparsable URL", "url", res.URL, "error", err)
			continue
		}
		pokemons = append(pokemons, models.Pokemon{
			ID:     id,
			Name:   res.Name,
			Number: id,
			Image:  fmt.Sprintf(artworkURLFmt, id),
		})
	}

	return models.NewListResponse(pokemons, models.Meta{
		TotalCount:  listing.Count,
		TotalPages:  ceilDiv(listing.Count, limit),
		CurrentPage: page,
	}), nil
}

// Search resolves an exact name or number match, case-insensitively. A blank
// term is equivalent to browsing the first page. "Not found" is a successful
// zero-result envelope, never an error.
func (r *PokemonRepository) Search(ctx context.Context, term string) (models.PagedResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.FindAll(ctx, DefaultPage, DefaultLimit)
	}

	detail, err := r.FindByID(ctx, strings.ToLower(term))
	if errors.Is(err, ErrNotFound) {
		return models.EmptySearchResponse(), nil
	}
	if err != nil {
		return models.PagedResponse{}, err
	}
	return models.NewSearchResponse(detail), nil
}

// FindByID fetches the primary record and its species description, merging
// them into one detail. The species fetch is best-effort: when it fails or
// has no English entry the description is left empty.
func (r *PokemonRepository) FindByID(ctx context.Context, idOrName string) (*models.PokemonDetail, error) {
	record, err := r.upstream.GetPokemon(ctx, idOrName)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			return nil, ErrNotFound
		}
		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// The species resource is keyed by the numeric id from the primary
	// record, not the original identifier, which may have been a name.
	description := ""
	species, err := r.upstream.GetSpecies(ctx, record.ID)
	if err != nil {
		logger.Warn("Species lookup failed, continuing without description", "id", record.ID, "error", err)
	} else {
		description = englishFlavorText(species.FlavorTextEntries)
	}

	stats := make(map[string]int, len(record.Stats))
	for _, s := range record.Stats {
		key := strings.ReplaceAll(s.Stat.Name, "-", "_")
		stats[key] = s.BaseStat
	}

	types := make([]string, 0, len(record.Types))
	for _, t := range record.Types {
		types = append(types, t.Type.Name)
	}
	abilities := make([]string, 0, len(record.Abilities))
	for _, a := range record.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}

	return &models.PokemonDetail{
		Pokemon: models.Pokemon{
			ID:     record.ID,
			Name:   record.Name,
			Number: record.ID,
			Image:  record.Sprites.Other.OfficialArtwork.FrontDefault,
		},
		Types:       types,
		Weight:      float64(record.Weight) / 10, // hectograms to kg
		Height:      float64(record.Height) / 10, // decimeters to m
		Abilities:   abilities,
		Stats:       stats,
		Description: description,
	}, nil
}

// Ping verifies the upstream is reachable; used by the readiness probe.
func (r *PokemonRepository) Ping(ctx context.Context) error {
	_, err := r.upstream.ListPokemon(ctx, 1, 0)
	return err
}

// englishFlavorText selects the first "en" entry and collapses the control
// characters the upstream embeds in flavor text.
func englishFlavorText(entries []upstream.FlavorTextEntry) string {
	for _, e := range entries {
		if e.Language.Name == "en" {
			text := strings.ReplaceAll(e.FlavorText, "\n", " ")
			return strings.ReplaceAll(text, "\f", " ")
		}
	}
	return ""
}

// idFromURL parses the numeric id from the trailing path segment of an
// upstream resource URL such as ".../pokemon/25/".
func idFromURL(rawURL string) (int, error) {
	trimmed := strings.TrimSuffix(rawURL, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return 0, fmt.Errorf("no path segments in %q", rawURL)
	}
	return strconv.Atoi(trimmed[idx+1:])
}

func ceilDiv(count, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (count + limit - 1) / limit
}
