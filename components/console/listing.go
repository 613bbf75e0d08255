package console

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// FilterStrategy selects where a list's search/filter narrowing happens. The
// two are never combined: a screen either forwards its query upstream or
// narrows the fetched page locally.
type FilterStrategy int

const (
	// ServerFiltered sends search text and filters with every fetch.
	ServerFiltered FilterStrategy = iota
	// ClientFiltered fetches unfiltered pages and narrows them in memory.
	ClientFiltered
)

// FetchFunc loads one page of records for the query.
type FetchFunc[T any] func(ctx context.Context, q ListQuery) (Page[T], error)

// MatchFunc reports whether a record matches the free-text search, for
// ClientFiltered screens.
type MatchFunc[T any] func(record T, search string) bool

// ListOption customizes a ListController.
type ListOption[T any] func(*ListController[T])

// WithPageSize overrides the default page size of 10.
func WithPageSize[T any](size int) ListOption[T] {
	return func(c *ListController[T]) {
		if size > 0 {
			c.perPage = size
		}
	}
}

// WithClientFilter switches the controller to in-memory narrowing using match.
func WithClientFilter[T any](match MatchFunc[T]) ListOption[T] {
	return func(c *ListController[T]) {
		c.strategy = ClientFiltered
		c.match = match
	}
}

// WithIdentity teaches the controller how to locate a record by id so single
// rows can be patched in place after quick actions.
func WithIdentity[T any](id func(T) string) ListOption[T] {
	return func(c *ListController[T]) { c.identity = id }
}

// ListController drives a paginated, filterable table screen. Every state
// change re-fetches and wholesale-replaces the loaded page; a generation
// counter makes sure a slow, superseded response can never overwrite the
// result of a newer one.
type ListController[T any] struct {
	mu       sync.Mutex
	fetch    FetchFunc[T]
	strategy FilterStrategy
	match    MatchFunc[T]
	identity func(T) string

	page         int
	perPage      int
	totalPages   int
	totalRecords int
	search       string
	filters      map[string]string

	records    []T
	generation uint64
}

// NewListController builds a controller starting at page 1.
func NewListController[T any](fetch FetchFunc[T], opts ...ListOption[T]) *ListController[T] {
	c := &ListController[T]{
		fetch:   fetch,
		page:    1,
		perPage: 10,
		filters: map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh re-fetches the current page. Only the most recently issued fetch
// may apply its response.
func (c *ListController[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	q := c.queryLocked()
	c.mu.Unlock()

	page, err := c.fetch(ctx, q)
	if err != nil {
		return fmt.Errorf("console: fetch page %d: %w", q.Page, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// A newer request was issued while this one was in flight.
		return nil
	}
	c.records = page.Records
	c.totalPages = page.TotalPages
	c.totalRecords = page.TotalRecords
	if page.CurrentPage > 0 {
		c.page = page.CurrentPage
	}
	return nil
}

func (c *ListController[T]) queryLocked() ListQuery {
	q := ListQuery{Page: c.page, PerPage: c.perPage}
	if c.strategy == ServerFiltered {
		q.Search = c.search
		q.Filters = make(map[string]string, len(c.filters))
		for k, v := range c.filters {
			q.Filters[k] = v
		}
	}
	return q
}

// SetSearch updates the free-text term. Server-filtered lists reset to page 1
// and re-fetch; client-filtered lists narrow the already-loaded page in place,
// so the page stays put and no fetch is issued.
func (c *ListController[T]) SetSearch(ctx context.Context, term string) error {
	c.mu.Lock()
	c.search = term
	if c.strategy == ClientFiltered {
		c.mu.Unlock()
		return nil
	}
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetFilter updates one discrete filter, resets to page 1 and re-fetches.
// An empty value clears the filter.
func (c *ListController[T]) SetFilter(ctx context.Context, key, value string) error {
	c.mu.Lock()
	if value == "" {
		delete(c.filters, key)
	} else {
		c.filters[key] = value
	}
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// NextPage advances one page. At the last known page it is a no-op and issues
// no fetch.
func (c *ListController[T]) NextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.totalPages > 0 && c.page >= c.totalPages {
		c.mu.Unlock()
		return nil
	}
	c.page++
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// PrevPage goes back one page. At page 1 it is a no-op and issues no fetch.
func (c *ListController[T]) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	if c.page <= 1 {
		c.mu.Unlock()
		return nil
	}
	c.page--
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// GoToPage jumps to a specific page, clamped to [1, totalPages].
func (c *ListController[T]) GoToPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if c.totalPages > 0 && page > c.totalPages {
		page = c.totalPages
	}
	if page == c.page {
		c.mu.Unlock()
		return nil
	}
	c.page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Records returns the visible rows: the loaded page, narrowed in memory when
// the screen is ClientFiltered and a search term is set.
func (c *ListController[T]) Records() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.strategy != ClientFiltered || c.search == "" || c.match == nil {
		return append([]T{}, c.records...)
	}
	term := strings.ToLower(c.search)
	out := make([]T, 0, len(c.records))
	for _, r := range c.records {
		if c.match(r, term) {
			out = append(out, r)
		}
	}
	return out
}

// Page returns the 1-based current page number.
func (c *ListController[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalPages returns the backend-reported page count.
func (c *ListController[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// TotalRecords returns the backend-reported record count.
func (c *ListController[T]) TotalRecords() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalRecords
}

// Patch applies fn to the single loaded row with the given id, leaving every
// other row untouched. Used by quick actions (status toggles) that already
// know the outcome without a full re-fetch.
func (c *ListController[T]) Patch(id string, fn func(T) T) bool {
	if c.identity == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, r := range c.records {
		if c.identity(r) == id {
			c.records[i] = fn(r)
			return true
		}
	}
	return false
}
