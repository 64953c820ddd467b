package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-hub/internal/domain/shop"
)

type shopRepo struct {
	mu   sync.RWMutex
	byID map[int64]shop.Item
}

func NewShopRepo() shop.Repository {
	return &shopRepo{byID: make(map[int64]shop.Item)}
}

func (r *shopRepo) Seed(ctx context.Context, items []shop.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]shop.Item, len(items))
	for _, it := range items {
		r.byID[it.ID] = it
	}
	return nil
}

func (r *shopRepo) List(ctx context.Context) ([]shop.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shop.Item, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *shopRepo) GetByID(ctx context.Context, id int64) (shop.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.byID[id]
	if !ok {
		return shop.Item{}, shop.ErrNotFound
	}
	return it, nil
}
