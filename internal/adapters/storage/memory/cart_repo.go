package memory

import (
	"context"
	"sync"

	"pet-care-hub/internal/domain/cart"
)

// cartRepo guarda los renglones en un slice para preservar el orden en que
// se agregaron los items (el map no alcanza para eso).
type cartRepo struct {
	mu    sync.RWMutex
	lines []cart.Line
}

func NewCartRepo() cart.Repository {
	return &cartRepo{lines: make([]cart.Line, 0)}
}

func (r *cartRepo) List(ctx context.Context) ([]cart.Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cart.Line, len(r.lines))
	copy(out, r.lines)
	return out, nil
}

func (r *cartRepo) Get(ctx context.Context, itemID int64) (cart.Line, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, line := range r.lines {
		if line.ItemID == itemID {
			return line, true, nil
		}
	}
	return cart.Line{}, false, nil
}

func (r *cartRepo) Upsert(ctx context.Context, line cart.Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].ItemID == line.ItemID {
			r.lines[i] = line
			return nil
		}
	}
	r.lines = append(r.lines, line)
	return nil
}

func (r *cartRepo) Remove(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.lines {
		if r.lines[i].ItemID == itemID {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return nil
}
