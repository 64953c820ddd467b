package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-hub/internal/domain/addresses"
)

type addressesRepo struct {
	mu     sync.RWMutex
	byID   map[int64]addresses.Address
	nextID int64
}

func NewAddressesRepo() addresses.Repository {
	return &addressesRepo{
		byID:   make(map[int64]addresses.Address),
		nextID: 1,
	}
}

func (r *addressesRepo) Seed(ctx context.Context, items []addresses.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]addresses.Address, len(items))
	for _, a := range items {
		r.byID[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return nil
}

func (r *addressesRepo) Create(ctx context.Context, a addresses.Address) (addresses.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *addressesRepo) List(ctx context.Context) ([]addresses.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]addresses.Address, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *addressesRepo) GetByID(ctx context.Context, id int64) (addresses.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return addresses.Address{}, addresses.ErrNotFound
	}
	return a, nil
}

func (r *addressesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return addresses.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
