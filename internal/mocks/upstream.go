// Package mocks provides canned upstream responses for tests.
package mocks

import (
	"context"
	"fmt"

	"github.com/Billy-Davies-2/pokedex-ui/internal/upstream"
)

// UpstreamClient is a configurable in-memory upstream.Client. Unset
// functions fall back to the canned fixtures below.
type UpstreamClient struct {
	ListPokemonFunc func(ctx context.Context, limit, offset int) (*upstream.ListPage, error)
	GetPokemonFunc  func(ctx context.Context, idOrName string) (*upstream.PokemonRecord, error)
	GetSpeciesFunc  func(ctx context.Context, id int) (*upstream.SpeciesRecord, error)
}

func (m *UpstreamClient) ListPokemon(ctx context.Context, limit, offset int) (*upstream.ListPage, error) {
	if m.ListPokemonFunc != nil {
		return m.ListPokemonFunc(ctx, limit, offset)
	}
	return ListPageFixture(limit, offset, 1302), nil
}

func (m *UpstreamClient) GetPokemon(ctx context.Context, idOrName string) (*upstream.PokemonRecord, error) {
	if m.GetPokemonFunc != nil {
		return m.GetPokemonFunc(ctx, idOrName)
	}
	if idOrName == "bulbasaur" || idOrName == "1" {
		return BulbasaurRecord(), nil
	}
	return nil, upstream.ErrNotFound
}

func (m *UpstreamClient) GetSpecies(ctx context.Context, id int) (*upstream.SpeciesRecord, error) {
	if m.GetSpeciesFunc != nil {
		return m.GetSpeciesFunc(ctx, id)
	}
	return BulbasaurSpecies(), nil
}

// ListPageFixture builds a page of sequentially numbered entries mimicking
// the upstream collection shape.
func ListPageFixture(limit, offset, count int) *upstream.ListPage {
	page := &upstream.ListPage{Count: count}
	for i := 0; i < limit && offset+i < count; i++ {
		id := offset + i + 1
		page.Results = append(page.Results, upstream.NamedResource{
			Name: fmt.Sprintf("pokemon-%d", id),
			URL:  fmt.Sprintf("https://pokeapi.co/api/v2/pokemon/%d/", id),
		})
	}
	return page
}

// BulbasaurRecord is a trimmed copy of the real upstream record.
func BulbasaurRecord() *upstream.PokemonRecord {
	record := &upstream.PokemonRecord{
		ID:     1,
		Name:   "bulbasaur",
		Weight: 69, // hectograms
		Height: 7,  // decimeters
	}

	stats := []struct {
		name string
		base int
	}{
		{"hp", 45},
		{"attack", 49},
		{"defense", 49},
		{"special-attack", 65},
		{"special-defense", 65},
		{"speed", 45},
	}
	for _, s := range stats {
		record.Stats = append(record.Stats, upstream.StatSlot{
			BaseStat: s.base,
			Stat:     upstream.NamedResource{Name: s.name},
		})
	}

	for i, t := range []string{"grass", "poison"} {
		record.Types = append(record.Types, upstream.TypeSlot{
			Slot: i + 1,
			Type: upstream.NamedResource{Name: t},
		})
	}

	for _, a := range []string{"overgrow", "chlorophyll"} {
		record.Abilities = append(record.Abilities, upstream.AbilitySlot{
			Ability: upstream.NamedResource{Name: a},
		})
	}

	record.Sprites.Other.OfficialArtwork.FrontDefault = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/1.png"
	return record
}

// BulbasaurSpecies carries a non-English entry first to exercise language
// selection, and control characters in the English text.
func BulbasaurSpecies() *upstream.SpeciesRecord {
	return &upstream.SpeciesRecord{
		FlavorTextEntries: []upstream.FlavorTextEntry{
			{
				FlavorText: "Una rara semilla le fue plantada al nacer.",
				Language:   upstream.NamedResource{Name: "es"},
			},
			{
				FlavorText: "A strange seed was\nplanted on its\fback at birth.",
				Language:   upstream.NamedResource{Name: "en"},
			},
		},
	}
}
