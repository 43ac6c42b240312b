// Package detail loads one pokemon at a time and navigates between
// neighbors by identifier.
package detail

import (
	"context"
	"strconv"
	"sync"

	"github.com/Billy-Davies-2/pokedex-ui/internal/client/api"
)

// Getter is the slice of the listing service the navigator needs.
type Getter interface {
	GetByID(ctx context.Context, id string) (*api.PokemonDetail, error)
}

// Navigator fetches details with last-requested-wins semantics: when a new
// Load is issued before a prior one resolves, the stale result is discarded
// on arrival and never overwrites newer state.
type Navigator struct {
	mu      sync.Mutex
	svc     Getter
	id      int
	gen     uint64
	current *api.PokemonDetail
	err     error
	loading bool
}

func NewNavigator(svc Getter) *Navigator {
	return &Navigator{svc: svc}
}

// Load fetches the detail for the given id and makes it current unless a
// newer Load was issued meanwhile.
func (n *Navigator) Load(ctx context.Context, id int) (*api.PokemonDetail, error) {
	n.mu.Lock()
	n.id = id
	n.gen++
	gen := n.gen
	n.loading = true
	n.mu.Unlock()

	detail, err := n.svc.GetByID(ctx, strconv.Itoa(id))

	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		// A newer request took over; this outcome is void.
		return nil, context.Canceled
	}
	n.loading = false
	n.current = detail
	n.err = err
	return detail, err
}

// Next loads the following id. There is no upper bound; out-of-range ids
// surface as a not-found from the service.
func (n *Navigator) Next(ctx context.Context) (*api.PokemonDetail, error) {
	n.mu.Lock()
	id := n.id + 1
	n.mu.Unlock()
	return n.Load(ctx, id)
}

// Previous loads the preceding id. At id 1 the navigation is suppressed
// entirely: no request is made and the current detail is kept.
func (n *Navigator) Previous(ctx context.Context) (*api.PokemonDetail, error) {
	n.mu.Lock()
	if n.id <= 1 {
		current, err := n.current, n.err
		n.mu.Unlock()
		return current, err
	}
	id := n.id - 1
	n.mu.Unlock()
	return n.Load(ctx, id)
}

// Current returns the last successfully applied detail, if any.
func (n *Navigator) Current() (*api.PokemonDetail, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.err
}
