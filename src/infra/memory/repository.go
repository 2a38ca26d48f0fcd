package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/sandai/players/src/domain/shared"
)

// Repository is an insertion-ordered in-memory store for any entity.
type Repository[E shared.Entity[ID], ID comparable] struct {
	mu     sync.RWMutex
	name   string
	items  map[ID]E
	order  []ID
	logger *zap.Logger
}

// NewRepository creates an empty store. name is used in errors and logs.
func NewRepository[E shared.Entity[ID], ID comparable](name string, logger *zap.Logger) *Repository[E, ID] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository[E, ID]{
		name:   name,
		items:  make(map[ID]E),
		logger: logger.With(zap.String("repository", name)),
	}
}

// Insert stores a new entity.
func (r *Repository[E, ID]) Insert(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(entity)
}

// BulkInsert stores every entity or none of them.
func (r *Repository[E, ID]) BulkInsert(ctx context.Context, entities []E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[ID]struct{}, len(entities))
	for _, e := range entities {
		id := e.EntityID()
		if _, exists := r.items[id]; exists {
			return fmt.Errorf("%s %v: %w", r.name, id, shared.ErrDuplicate)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("%s %v: %w", r.name, id, shared.ErrDuplicate)
		}
		seen[id] = struct{}{}
	}
	for _, e := range entities {
		if err := r.insertLocked(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[E, ID]) insertLocked(entity E) error {
	id := entity.EntityID()
	if _, exists := r.items[id]; exists {
		return fmt.Errorf("%s %v: %w", r.name, id, shared.ErrDuplicate)
	}
	r.items[id] = entity
	r.order = append(r.order, id)
	r.logger.Debug("entity inserted", zap.Any("id", id))
	return nil
}

// Update replaces a stored entity.
func (r *Repository[E, ID]) Update(ctx context.Context, entity E) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.EntityID()
	if _, exists := r.items[id]; !exists {
		return shared.NewNotFoundError(r.name, id)
	}
	r.items[id] = entity
	r.logger.Debug("entity updated", zap.Any("id", id))
	return nil
}

// Delete removes an entity.
func (r *Repository[E, ID]) Delete(ctx context.Context, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return shared.NewNotFoundError(r.name, id)
	}
	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	r.logger.Debug("entity deleted", zap.Any("id", id))
	return nil
}

// FindByID retrieves an entity.
func (r *Repository[E, ID]) FindByID(ctx context.Context, id ID) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.items[id]
	if !exists {
		var zero E
		return zero, shared.NewNotFoundError(r.name, id)
	}
	return e, nil
}

// FindAll returns every entity in insertion order.
func (r *Repository[E, ID]) FindAll(ctx context.Context) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked(), nil
}

func (r *Repository[E, ID]) snapshotLocked() []E {
	items := make([]E, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items
}
