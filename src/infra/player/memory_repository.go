package player

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sandai/players/src/domain/player"
	"github.com/sandai/players/src/domain/shared"
	"github.com/sandai/players/src/infra/memory"
)

const (
	SortDisplayName = "displayName"
	SortCreatedAt   = "createdAt"
)

var sortableFields = map[string]memory.Comparator[*player.Player]{
	SortDisplayName: memory.Ordered(func(p *player.Player) string { return p.DisplayName() }),
	SortCreatedAt: func(a, b *player.Player) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	},
}

// MemoryRepository implements player.Repository using in-memory storage.
type MemoryRepository struct {
	*memory.SearchableRepository[*player.Player, shared.PlayerID]
}

var _ player.Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates a new in-memory player repository.
func NewMemoryRepository(logger *zap.Logger) *MemoryRepository {
	return &MemoryRepository{
		SearchableRepository: memory.NewSearchableRepository[*player.Player, shared.PlayerID]("Player", logger, searcher{}),
	}
}

// SortableFields lists the values accepted as a search sort.
func SortableFields() []string {
	return []string{SortDisplayName, SortCreatedAt}
}

type searcher struct{}

// ApplyFilter keeps players whose display name contains filter, ignoring case.
func (searcher) ApplyFilter(items []*player.Player, filter string) []*player.Player {
	if filter == "" {
		return items
	}
	needle := strings.ToLower(filter)
	matched := make([]*player.Player, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.DisplayName()), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ApplySort defaults to the newest players first.
func (searcher) ApplySort(items []*player.Player, sort string, dir shared.SortDirection) []*player.Player {
	if sort == "" {
		return memory.SortBy(items, SortCreatedAt, shared.SortDesc, sortableFields)
	}
	return memory.SortBy(items, sort, dir, sortableFields)
}
