package shared

import (
	"context"
	"strings"
)

// SortDirection orders search results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection is case-insensitive; anything other than "desc" sorts ascending.
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// SearchParams narrows and orders a search. Empty Filter matches everything
// and empty Sort leaves ordering to the repository.
type SearchParams struct {
	Filter  string
	Sort    string
	SortDir SortDirection
}

// SearchResult holds the matching items and how they were selected.
type SearchResult[E any] struct {
	Items   []E
	Total   int
	Filter  string
	Sort    string
	SortDir SortDirection
}

// Repository is the persistence contract shared by every aggregate.
type Repository[E Entity[ID], ID comparable] interface {
	Insert(ctx context.Context, entity E) error
	BulkInsert(ctx context.Context, entities []E) error
	Update(ctx context.Context, entity E) error
	Delete(ctx context.Context, id ID) error
	FindByID(ctx context.Context, id ID) (E, error)
	FindAll(ctx context.Context) ([]E, error)
}

// SearchableRepository adds filtered, sorted lookups.
type SearchableRepository[E Entity[ID], ID comparable] interface {
	Repository[E, ID]
	Search(ctx context.Context, params SearchParams) (SearchResult[E], error)
}
