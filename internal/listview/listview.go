// Package listview implements the paginated list pattern shared by every
// management screen: one full in-memory collection fetched from a list
// endpoint, a 1-based page window over it, and a confirm-then-delete flow
// that prunes local state after the server acknowledges.
//
// The legacy dashboard reimplemented this per screen; it is implemented once
// here and parameterized by endpoint adapters.
package listview

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPageSize is the page size used by most management screens.
// Document/history views typically configure CompactPageSize instead.
const (
	DefaultPageSize = 10
	CompactPageSize = 5
)

// Config parameterizes a List for one entity type.
type Config[T any] struct {
	// Fetch returns the full ordered collection. No server-side pagination is
	// assumed; all paging happens client-side over the full result.
	Fetch func(ctx context.Context) ([]T, error)
	// Delete removes one record by id on the server. Optional; Remove returns
	// an error when unset.
	Delete func(ctx context.Context, id string) error
	// ID projects a record to its identity, used by Remove's local filter.
	ID func(item T) string
	// PageSize is the fixed window size. Must be positive.
	PageSize int
}

// List holds the paginated collection state for one screen instance.
// It is not safe for concurrent use; the dashboard's event-loop model is
// single-threaded and callers are expected to serialize access.
type List[T any] struct {
	cfg    Config[T]
	items  []T
	page   int
	loaded bool
}

// New constructs a List from cfg. Fetch and ID are required and PageSize must
// be positive.
func New[T any](cfg Config[T]) (*List[T], error) {
	if cfg.Fetch == nil {
		return nil, errors.New("listview: Fetch is required")
	}
	if cfg.ID == nil {
		return nil, errors.New("listview: ID projection is required")
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("listview: PageSize must be positive, got %d", cfg.PageSize)
	}
	return &List[T]{cfg: cfg, page: 1}, nil
}

// Load fetches the full collection. The very first successful load resets the
// window to page 1; later loads (post create/update refetch) preserve the
// current page number even when the new collection leaves it out of range.
// On error the previous collection and page are left untouched.
func (l *List[T]) Load(ctx context.Context) error {
	items, err := l.cfg.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch collection: %w", err)
	}
	l.items = items
	if !l.loaded {
		l.page = 1
		l.loaded = true
	}
	return nil
}

// Len returns the size of the full collection.
func (l *List[T]) Len() int { return len(l.items) }

// Items returns the full collection in fetch order.
func (l *List[T]) Items() []T { return l.items }

// Page returns the current 1-based page number. After a refetch shrinks the
// collection the stored page may exceed TotalPages; Slice is empty then.
func (l *List[T]) Page() int { return l.page }

// TotalPages returns ceil(len/pageSize); zero for an empty collection.
func (l *List[T]) TotalPages() int {
	if len(l.items) == 0 {
		return 0
	}
	return (len(l.items) + l.cfg.PageSize - 1) / l.cfg.PageSize
}

// SetPage moves the window to page n. Requests before page 1 or past the last
// page are ignored; the return value reports whether the page changed.
func (l *List[T]) SetPage(n int) bool {
	if n < 1 || n > l.TotalPages() {
		return false
	}
	l.page = n
	return true
}

// Slice returns exactly the [(page-1)*size, page*size) window of the full
// collection, empty when the page is beyond the collection.
func (l *List[T]) Slice() []T {
	start := (l.page - 1) * l.cfg.PageSize
	if start >= len(l.items) {
		return nil
	}
	end := start + l.cfg.PageSize
	if end > len(l.items) {
		end = len(l.items)
	}
	return l.items[start:end]
}

// PageNumbers returns one entry per page, 1..TotalPages. The control renders
// a button per number rather than a truncated window.
func (l *List[T]) PageNumbers() []int {
	total := l.TotalPages()
	if total == 0 {
		return nil
	}
	pages := make([]int, total)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// HasPrev reports whether a Previous control should be enabled.
func (l *List[T]) HasPrev() bool { return l.page > 1 }

// HasNext reports whether a Next control should be enabled.
func (l *List[T]) HasNext() bool { return l.page < l.TotalPages() }

// Remove deletes the record by id on the server and, only after the server
// acknowledges, filters it out of the local collection. No refetch happens.
// On failure the collection is left unchanged and the error is returned for
// the caller to surface. The explicit user confirmation step happens before
// Remove is called; a declined confirmation never reaches this method.
func (l *List[T]) Remove(ctx context.Context, id string) error {
	if l.cfg.Delete == nil {
		return errors.New("listview: Delete is not configured")
	}
	if err := l.cfg.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %q: %w", id, err)
	}
	kept := l.items[:0:0]
	for _, item := range l.items {
		if l.cfg.ID(item) != id {
			kept = append(kept, item)
		}
	}
	l.items = kept
	return nil
}
