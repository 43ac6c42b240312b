// Package list owns the incremental listing state: pagination while
// browsing, single-shot replacement while searching, and the pure sort
// applied before display.
package list

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Billy-Davies-2/pokedex-ui/internal/client/api"
	"github.com/Billy-Davies-2/pokedex-ui/internal/client/signal"
	"github.com/Billy-Davies-2/pokedex-ui/internal/logger"
)

// PageSize is the fixed page size used while browsing.
const PageSize = 20

// DefaultDebounce is how long the search input must be quiet before a
// request fires.
const DefaultDebounce = 750 * time.Millisecond

// Mode distinguishes accumulating page loads from single-shot search.
type Mode string

const (
	ModeBrowsing  Mode = "browsing"
	ModeSearching Mode = "searching"
)

// SortKey selects the presentation order.
type SortKey string

const (
	SortByNumber SortKey = "number"
	SortByName   SortKey = "name"
)

// Fetcher is the slice of the listing service the controller needs.
type Fetcher interface {
	GetAll(ctx context.Context, page, limit int) (*api.PagedResponse, error)
	Search(ctx context.Context, term string) (*api.PagedResponse, error)
}

// State is a snapshot of the controller for rendering.
type State struct {
	Items   []api.Pokemon
	Page    int
	HasMore bool
	Loading bool
	Term    string
	Mode    Mode
}

// Controller drives successive page fetches and search replacement. The
// loading flag is the only mutual exclusion for page loads: page requests
// are issued one at a time, so appends apply in request order by
// construction. A generation counter invalidates fetches that were in
// flight when the search term changed.
type Controller struct {
	mu        sync.Mutex
	svc       Fetcher
	items     []api.Pokemon
	page      int
	hasMore   bool
	loading   bool
	term      string
	gen       uint64
	debouncer *Debouncer
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	debounce time.Duration
}

// WithDebounce overrides the settle delay; tests use short windows.
func WithDebounce(d time.Duration) Option {
	return func(o *options) { o.debounce = d }
}

// NewController creates a controller in browsing mode with an empty list.
func NewController(svc Fetcher, opts ...Option) *Controller {
	o := options{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		svc:     svc,
		page:    1,
		hasMore: true,
	}
	c.debouncer = NewDebouncer(o.debounce, func(term string) {
		c.ApplySearch(context.Background(), term)
	})
	return c
}

// Start performs the initial browse fetch of page 1.
func (c *Controller) Start(ctx context.Context) {
	c.loadPage(ctx)
}

// SetSearchTerm feeds a keystroke-level term change into the debouncer.
// Only the settled value triggers a fetch.
func (c *Controller) SetSearchTerm(term string) {
	c.debouncer.Trigger(term)
}

// ApplySearch applies a settled search term immediately: the list state is
// reset, then either a browse of page 1 (blank term) or a single-shot
// search runs. Applying the current term again is a no-op.
func (c *Controller) ApplySearch(ctx context.Context, term string) {
	c.mu.Lock()
	if term == c.term {
		c.mu.Unlock()
		return
	}
	c.term = term
	c.gen++
	c.items = nil
	c.page = 1
	c.hasMore = true
	c.loading = false
	c.mu.Unlock()

	if term == "" {
		c.loadPage(ctx)
		return
	}
	c.search(ctx, term)
}

// SentinelVisible is the "reached near end of visible list" signal. It
// advances the page only while browsing, not loading, and more data remains.
func (c *Controller) SentinelVisible(ctx context.Context) {
	c.mu.Lock()
	if c.loading || !c.hasMore || c.term != "" {
		c.mu.Unlock()
		return
	}
	c.page++
	c.mu.Unlock()

	c.loadPage(ctx)
}

// Bind subscribes the controller to a signal bus so sentinel-visibility
// events advance pagination. The returned function detaches it.
func (c *Controller) Bind(bus *signal.Bus) func() {
	ch := bus.Subscribe()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if event.Type == signal.SentinelVisible {
					c.SentinelVisible(context.Background())
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		bus.Unsubscribe(ch)
	}
}

// Close cancels the pending debounce timer.
func (c *Controller) Close() {
	c.debouncer.Stop()
}

// Snapshot returns a copy of the current state for rendering.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]api.Pokemon, len(c.items))
	copy(items, c.items)

	mode := ModeBrowsing
	if c.term != "" {
		mode = ModeSearching
	}
	return State{
		Items:   items,
		Page:    c.page,
		HasMore: c.hasMore,
		Loading: c.loading,
		Term:    c.term,
		Mode:    mode,
	}
}

// Sorted returns the accumulated items ordered by the given key. It is a
// pure transform over the current items and never triggers a fetch.
func (c *Controller) Sorted(key SortKey) []api.Pokemon {
	items := c.Snapshot().Items
	switch key {
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.Compare(items[i].Name, items[j].Name) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Number < items[j].Number
		})
	}
	return items
}

// loadPage fetches the current page and appends its results. The results of
// a fetch that was superseded by a term change are discarded.
func (c *Controller) loadPage(ctx context.Context) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return
	}
	c.loading = true
	gen := c.gen
	page := c.page
	c.mu.Unlock()

	result, err := c.svc.GetAll(ctx, page, PageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.loading = false

	if err != nil {
		logger.Error("Failed to load pokemon page", "error", err, "page", page)
		c.items = nil
		return
	}

	c.items = append(c.items, result.Data...)
	if len(result.Data) == 0 || len(c.items) >= result.Meta.TotalCount {
		c.hasMore = false
	}
}

// search replaces the list with a single-shot search result.
func (c *Controller) search(ctx context.Context, term string) {
	c.mu.Lock()
	c.loading = true
	gen := c.gen
	c.mu.Unlock()

	result, err := c.svc.Search(ctx, term)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.loading = false

	if err != nil {
		logger.Error("Failed to search pokemons", "error", err, "term", term)
		c.items = nil
		return
	}

	c.items = result.Data
	c.hasMore = false
}
