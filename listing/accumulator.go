package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/canghafiz/xsell-bff/models"
)

// PageSize is the fixed batch size for the initial render and every
// load-more call.
const PageSize = 21

// PageResult is one fetched page. Failure is a value, never a panic or a
// returned Go error: Success=false with Code/Err set covers input, network
// and upstream failures alike.
type PageResult struct {
	Items          []models.ProductItem
	RequestedLimit int
	Success        bool
	Code           int
	Err            string
}

// PageFetcher fetches one page for a filter. Implementations must resolve
// every failure mode into the PageResult rather than returning an error.
type PageFetcher func(ctx context.Context, f Filter, limit, offset int) PageResult

// ErrFetchFailed wraps the message of a failed page fetch surfaced by
// LoadMore. The failure is terminal for the accumulator; recovery requires a
// new accumulator via a filter change.
var ErrFetchFailed = errors.New("listing: page fetch failed")

// Accumulator grows the product list for one filter configuration under
// repeated load-more triggers. Items are deduplicated by product id, the
// offset only advances after a successful append, and exhaustion (hasMore
// false) is permanent for the lifetime of the accumulator.
//
// One accumulator belongs to one mounted listing view. A filter change
// discards it and seeds a new one from a fresh server-rendered first page.
type Accumulator struct {
	mu      sync.Mutex
	filter  Filter
	fetch   PageFetcher
	items   []models.ProductItem
	seen    map[int64]struct{}
	offset  int
	hasMore bool
	loading bool
	closed  bool
}

// NewAccumulator seeds an accumulator from the server-rendered first page.
// A failed or short seed page means there is nothing more to load.
func NewAccumulator(f Filter, fetch PageFetcher, seed PageResult) *Accumulator {
	a := &Accumulator{
		filter: f,
		fetch:  fetch,
		seen:   make(map[int64]struct{}),
		offset: PageSize,
	}
	if seed.Success {
		a.appendNew(seed.Items)
		a.hasMore = len(seed.Items) >= PageSize
	}
	return a
}

// appendNew appends items whose id is not yet present, preserving backend
// order, and returns how many were actually added.
func (a *Accumulator) appendNew(items []models.ProductItem) int {
	added := 0
	for _, it := range items {
		if _, dup := a.seen[it.ProductID]; dup {
			continue
		}
		a.seen[it.ProductID] = struct{}{}
		a.items = append(a.items, it)
		added++
	}
	return added
}

// LoadMore fetches the next page and merges it into the list. It is a no-op
// while a fetch is in flight or after exhaustion, so double triggers cause
// exactly one network call. Any fetch failure is terminal: hasMore drops to
// false, items stay unchanged and the error is returned as a value.
func (a *Accumulator) LoadMore(ctx context.Context) error {
	a.mu.Lock()
	if a.loading || !a.hasMore || a.closed {
		a.mu.Unlock()
		return nil
	}
	a.loading = true
	filter := a.filter
	offset := a.offset
	a.mu.Unlock()

	res := a.fetch(ctx, filter, PageSize, offset)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.loading = false

	// Stale response: the owning view unmounted while the fetch was in
	// flight. Discard without touching state.
	if a.closed {
		return nil
	}

	if !res.Success {
		a.hasMore = false
		return fmt.Errorf("%w: %s", ErrFetchFailed, res.Err)
	}

	if len(res.Items) == 0 {
		a.hasMore = false
		return nil
	}

	added := a.appendNew(res.Items)
	if added == 0 {
		// Every item was already present. A backend re-serving overlapping
		// pages under concurrent writes would otherwise loop forever; treat
		// an all-duplicate page as end of data.
		a.hasMore = false
		return nil
	}

	a.offset += PageSize
	if len(res.Items) < PageSize {
		// Short page: the backend has nothing past this point.
		a.hasMore = false
	}
	return nil
}

// Close marks the accumulator unmounted. In-flight fetch results arriving
// afterwards are discarded.
func (a *Accumulator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	a.hasMore = false
}

// Items returns the accumulated products in display order.
func (a *Accumulator) Items() []models.ProductItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.ProductItem, len(a.items))
	copy(out, a.items)
	return out
}

func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

func (a *Accumulator) Offset() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.offset
}

func (a *Accumulator) HasMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasMore
}

func (a *Accumulator) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

func (a *Accumulator) Filter() Filter {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filter
}
