package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-hub/internal/domain/pets"
)

type petsRepo struct {
	mu   sync.RWMutex
	byID map[int64]pets.Pet
}

func NewPetsRepo() pets.Repository {
	return &petsRepo{byID: make(map[int64]pets.Pet)}
}

func (r *petsRepo) Seed(ctx context.Context, items []pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]pets.Pet, len(items))
	for _, p := range items {
		r.byID[p.ID] = p
	}
	return nil
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// orden estable por id asc
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}
