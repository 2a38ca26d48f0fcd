package memory

import (
	"cmp"
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/sandai/players/src/domain/shared"
)

// Comparator orders two entities by a single field.
type Comparator[E any] func(a, b E) int

// Searcher supplies the entity specific parts of a search.
type Searcher[E any] interface {
	ApplyFilter(items []E, filter string) []E
	ApplySort(items []E, sort string, dir shared.SortDirection) []E
}

// SearchableRepository extends Repository with filter then sort searches.
type SearchableRepository[E shared.Entity[ID], ID comparable] struct {
	*Repository[E, ID]
	searcher Searcher[E]
}

func NewSearchableRepository[E shared.Entity[ID], ID comparable](name string, logger *zap.Logger, searcher Searcher[E]) *SearchableRepository[E, ID] {
	return &SearchableRepository[E, ID]{
		Repository: NewRepository[E, ID](name, logger),
		searcher:   searcher,
	}
}

// Search filters the stored entities and sorts what remains. Total counts
// the filtered items.
func (r *SearchableRepository[E, ID]) Search(ctx context.Context, params shared.SearchParams) (shared.SearchResult[E], error) {
	r.mu.RLock()
	items := r.snapshotLocked()
	r.mu.RUnlock()

	filtered := r.searcher.ApplyFilter(items, params.Filter)
	sorted := r.searcher.ApplySort(filtered, params.Sort, params.SortDir)

	r.logger.Debug("search",
		zap.String("filter", params.Filter),
		zap.String("sort", params.Sort),
		zap.String("sort_dir", string(params.SortDir)),
		zap.Int("total", len(filtered)),
	)

	return shared.SearchResult[E]{
		Items:   sorted,
		Total:   len(filtered),
		Filter:  params.Filter,
		Sort:    params.Sort,
		SortDir: params.SortDir,
	}, nil
}

// SortBy returns items unchanged when field is empty or not in fields.
// Otherwise it returns a stably sorted copy.
func SortBy[E any](items []E, field string, dir shared.SortDirection, fields map[string]Comparator[E]) []E {
	compare, ok := fields[field]
	if field == "" || !ok {
		return items
	}
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b E) int {
		if dir == shared.SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return sorted
}

// Ordered adapts a field getter into a Comparator.
func Ordered[E any, V cmp.Ordered](get func(E) V) Comparator[E] {
	return func(a, b E) int {
		return cmp.Compare(get(a), get(b))
	}
}
