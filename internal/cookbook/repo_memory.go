package cookbook

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// MemoryRepo stores entities in memory for the lifetime of the process.
// Entities are immutable once stored; there is no update or delete.
type MemoryRepo struct {
	mu       sync.RWMutex
	entities map[string]Entity
	order    []string // names in first-insertion order
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{entities: make(map[string]Entity)}
}

// Insert validates the candidate and stores the resulting entity. On
// failure nothing is stored. Names are unique across both kinds,
// case-sensitive.
func (r *MemoryRepo) Insert(ctx context.Context, c Candidate) (Entity, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := c.build(func(name string) bool {
		_, ok := r.entities[name]
		return ok
	})
	observeInsert(e, err)
	if err != nil {
		return Entity{}, err
	}

	r.entities[e.Name] = e
	r.order = append(r.order, e.Name)
	return e, nil
}

// Seed bulk-inserts candidates in order, stopping at the first invalid one.
func (r *MemoryRepo) Seed(ctx context.Context, candidates []Candidate) error {
	for i, c := range candidates {
		if _, err := r.Insert(ctx, c); err != nil {
			return errors.Wrapf(err, "seed entry %d", i)
		}
	}
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, name string) (Entity, bool, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[name]
	return e, ok, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Entity, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entities[name])
	}
	return out, nil
}
