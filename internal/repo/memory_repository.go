package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rogerio-castellano/factory-management/internal/models"
)

// InMemoryRepository is an in-memory implementation of Repository that
// reproduces the storage errors clients see from MySQL.
type InMemoryRepository[T any] struct {
	mu          sync.RWMutex
	table       Table[T]
	rows        map[string]T
	unavailable bool
}

func NewInMemoryRepository[T any](table Table[T]) *InMemoryRepository[T] {
	return &InMemoryRepository[T]{
		table: table,
		rows:  map[string]T{},
	}
}

// SetUnavailable makes every call fail as if the database were down.
func (r *InMemoryRepository[T]) SetUnavailable(down bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unavailable = down
}

func (r *InMemoryRepository[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = map[string]T{}
}

func (r *InMemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.unavailable {
		return nil, ErrUnavailable
	}

	keys := make([]string, 0, len(r.rows))
	for k := range r.rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]T, 0, len(keys))
	for _, k := range keys {
		result = append(result, r.rows[k])
	}
	return result, nil
}

func (r *InMemoryRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	if r.unavailable {
		return zero, ErrUnavailable
	}
	row, ok := r.rows[id]
	if !ok {
		return zero, ErrNotFound
	}
	return row, nil
}

func (r *InMemoryRepository[T]) Create(ctx context.Context, row T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return ErrUnavailable
	}
	key := r.table.KeyOf(row)
	if !key.Valid {
		return fmt.Errorf("Error 1048 (23000): Column '%s' cannot be null", r.table.Key)
	}
	if _, exists := r.rows[key.String]; exists {
		return fmt.Errorf("Error 1062 (23000): Duplicate entry '%s' for key '%s.PRIMARY'", key.String, r.table.Name)
	}
	r.rows[key.String] = row
	return nil
}

// Update overwrites the row stored under id. A missing id is not an error.
func (r *InMemoryRepository[T]) Update(ctx context.Context, id string, row T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return ErrUnavailable
	}
	if _, exists := r.rows[id]; !exists {
		return nil
	}

	// the key column is never part of the SET list
	*r.table.fields(&row)[0].(*models.NullString) = models.NewNullString(id)
	r.rows[id] = row
	return nil
}

func (r *InMemoryRepository[T]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return ErrUnavailable
	}
	delete(r.rows, id)
	return nil
}

// InMemoryHealthRepository reports whatever error it was given.
type InMemoryHealthRepository struct {
	Err error
}

func (r *InMemoryHealthRepository) Ping(ctx context.Context) error {
	return r.Err
}
