package listing

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canghafiz/xsell-bff/models"
)

func page(ids ...int64) []models.ProductItem {
	items := make([]models.ProductItem, len(ids))
	for i, id := range ids {
		items[i] = models.ProductItem{ProductID: id, Title: "item"}
	}
	return items
}

func idRange(from, to int64) []int64 {
	ids := make([]int64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func successPage(ids []int64) PageResult {
	return PageResult{Items: page(ids...), RequestedLimit: PageSize, Success: true, Code: 200}
}

// stubFetcher replays a fixed sequence of pages and counts calls.
func stubFetcher(calls *int32, pages ...PageResult) PageFetcher {
	var i int32 = -1
	return func(ctx context.Context, f Filter, limit, offset int) PageResult {
		atomic.AddInt32(calls, 1)
		n := atomic.AddInt32(&i, 1)
		if int(n) >= len(pages) {
			return PageResult{RequestedLimit: limit, Success: true, Code: 200}
		}
		return pages[n]
	}
}

func ids(items []models.ProductItem) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.ProductID
	}
	return out
}

func TestInitialLoadSeedsAccumulator(t *testing.T) {
	f := DefaultFilter().SelectCategory("electronics")
	f.SortBy = SortPriceDesc

	a := NewAccumulator(f, nil, successPage(idRange(1, 21)))

	assert.Equal(t, idRange(1, 21), ids(a.Items()))
	assert.Equal(t, PageSize, a.Offset())
	assert.True(t, a.HasMore())
	assert.False(t, a.Loading())
}

func TestShortSeedPageIsAlreadyExhausted(t *testing.T) {
	a := NewAccumulator(DefaultFilter(), nil, successPage(idRange(1, 5)))

	assert.Equal(t, idRange(1, 5), ids(a.Items()))
	assert.False(t, a.HasMore())
}

func TestFailedSeedPageIsEmptyAndExhausted(t *testing.T) {
	seed := PageResult{RequestedLimit: PageSize, Code: 502, Err: "upstream unavailable"}
	a := NewAccumulator(DefaultFilter(), nil, seed)

	assert.Empty(t, a.Items())
	assert.False(t, a.HasMore())
}

func TestLoadMoreAppendsAndAdvancesOffset(t *testing.T) {
	var calls int32
	fetch := stubFetcher(&calls, successPage(idRange(22, 42)))
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	require.NoError(t, a.LoadMore(context.Background()))

	assert.Equal(t, idRange(1, 42), ids(a.Items()))
	assert.Equal(t, 2*PageSize, a.Offset())
	assert.True(t, a.HasMore())
}

func TestLoadMoreShortPageTerminates(t *testing.T) {
	var calls int32
	fetch := stubFetcher(&calls, successPage(idRange(22, 30)))
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	require.NoError(t, a.LoadMore(context.Background()))

	assert.Equal(t, idRange(1, 30), ids(a.Items()))
	assert.False(t, a.HasMore())

	// Terminal: further calls never fetch again.
	require.NoError(t, a.LoadMore(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.False(t, a.HasMore())
}

func TestLoadMoreEmptyPageTerminates(t *testing.T) {
	var calls int32
	fetch := stubFetcher(&calls, successPage(nil))
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	require.NoError(t, a.LoadMore(context.Background()))

	assert.Equal(t, idRange(1, 21), ids(a.Items()))
	assert.False(t, a.HasMore())
}

func TestLoadMoreDeduplicatesOverlappingPage(t *testing.T) {
	// Backend re-serves ids 15..21 because concurrent writes shifted the
	// offset; only the genuinely new items may land.
	var calls int32
	fetch := stubFetcher(&calls, successPage(idRange(15, 35)))
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	require.NoError(t, a.LoadMore(context.Background()))

	assert.Equal(t, idRange(1, 35), ids(a.Items()))
	assert.Equal(t, 2*PageSize, a.Offset())
	assert.True(t, a.HasMore())
}

func TestLoadMoreAllDuplicatePageTerminates(t *testing.T) {
	var calls int32
	fetch := stubFetcher(&calls, successPage(idRange(1, 21)))
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	require.NoError(t, a.LoadMore(context.Background()))

	assert.Equal(t, idRange(1, 21), ids(a.Items()), "items must be unchanged")
	assert.Equal(t, PageSize, a.Offset(), "offset must not advance")
	assert.False(t, a.HasMore())
}

func TestLoadMoreFetchFailureIsTerminal(t *testing.T) {
	var calls int32
	fetch := stubFetcher(&calls, PageResult{RequestedLimit: PageSize, Code: 500, Err: "network error"})
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	err := a.LoadMore(context.Background())
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "network error")

	assert.Equal(t, idRange(1, 21), ids(a.Items()), "items must be unchanged on failure")
	assert.False(t, a.HasMore())

	// No retry path: the next call is a no-op.
	require.NoError(t, a.LoadMore(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLoadMoreSingleInFlightFetch(t *testing.T) {
	var calls int32
	var once sync.Once
	started := make(chan struct{})
	gate := make(chan struct{})
	fetch := func(ctx context.Context, f Filter, limit, offset int) PageResult {
		atomic.AddInt32(&calls, 1)
		once.Do(func() { close(started) })
		<-gate
		return successPage(idRange(22, 42))
	}
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	done := make(chan error, 1)
	go func() { done <- a.LoadMore(context.Background()) }()

	// Second trigger lands while the first fetch is still in flight: it must
	// be a no-op.
	<-started
	require.NoError(t, a.LoadMore(context.Background()))
	assert.True(t, a.Loading())

	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "double trigger must cause exactly one fetch")
	assert.Equal(t, idRange(1, 42), ids(a.Items()))
}

func TestNoDuplicatesAcrossManyPages(t *testing.T) {
	var calls int32
	fetch := stubFetcher(&calls,
		successPage(idRange(22, 42)),
		successPage(idRange(40, 60)),
		successPage(idRange(55, 70)),
	)
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	for a.HasMore() {
		require.NoError(t, a.LoadMore(context.Background()))
	}

	seen := make(map[int64]bool)
	for _, id := range ids(a.Items()) {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Equal(t, idRange(1, 70), ids(a.Items()))
}

func TestStaleResponseAfterCloseIsDiscarded(t *testing.T) {
	started := make(chan struct{})
	gate := make(chan struct{})
	fetch := func(ctx context.Context, f Filter, limit, offset int) PageResult {
		close(started)
		<-gate
		return successPage(idRange(22, 42))
	}
	a := NewAccumulator(DefaultFilter(), fetch, successPage(idRange(1, 21)))

	done := make(chan error, 1)
	go func() { done <- a.LoadMore(context.Background()) }()

	<-started
	a.Close()
	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, idRange(1, 21), ids(a.Items()), "stale page must not land after close")
	assert.Equal(t, PageSize, a.Offset())
	assert.False(t, a.HasMore())
}

func TestLoadMorePassesFilterAndOffset(t *testing.T) {
	want := DefaultFilter().SelectCategory("electronics").ToggleSubCategory("laptops")

	var gotFilter Filter
	var gotLimit, gotOffset int
	fetch := func(ctx context.Context, f Filter, limit, offset int) PageResult {
		gotFilter, gotLimit, gotOffset = f, limit, offset
		return successPage(nil)
	}
	a := NewAccumulator(want, fetch, successPage(idRange(1, 21)))

	require.NoError(t, a.LoadMore(context.Background()))
	assert.Equal(t, want, gotFilter)
	assert.Equal(t, PageSize, gotLimit)
	assert.Equal(t, PageSize, gotOffset)
}
