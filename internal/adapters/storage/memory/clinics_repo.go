package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-hub/internal/domain/clinics"
)

type clinicsRepo struct {
	mu   sync.RWMutex
	byID map[int64]clinics.Clinic
}

func NewClinicsRepo() clinics.Repository {
	return &clinicsRepo{byID: make(map[int64]clinics.Clinic)}
}

func (r *clinicsRepo) Seed(ctx context.Context, items []clinics.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]clinics.Clinic, len(items))
	for _, c := range items {
		r.byID[c.ID] = c
	}
	return nil
}

func (r *clinicsRepo) List(ctx context.Context) ([]clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clinics.Clinic, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *clinicsRepo) GetByID(ctx context.Context, id int64) (clinics.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return clinics.Clinic{}, clinics.ErrNotFound
	}
	return c, nil
}

func (r *clinicsRepo) SetPinned(ctx context.Context, id int64, pinned bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return clinics.ErrNotFound
	}
	c.Pinned = pinned
	r.byID[id] = c
	return nil
}
