package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-hub/internal/domain/appointments"
)

type appointmentsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]appointments.Appointment
	nextID int64
}

func NewAppointmentsRepo() appointments.Repository {
	return &appointmentsRepo{
		byID:   make(map[int64]appointments.Appointment),
		nextID: 1,
	}
}

func (r *appointmentsRepo) Seed(ctx context.Context, items []appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]appointments.Appointment, len(items))
	for _, a := range items {
		r.byID[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return nil
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(func(appointments.Appointment) bool { return true }), nil
}

func (r *appointmentsRepo) ListByStatus(ctx context.Context, status appointments.Status) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked(func(a appointments.Appointment) bool { return a.Status == status }), nil
}

// listLocked devuelve en orden de creación (id asc). Requiere lock tomado.
func (r *appointmentsRepo) listLocked(keep func(appointments.Appointment) bool) []appointments.Appointment {
	out := make([]appointments.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id int64, status appointments.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.ErrNotFound
	}
	a.Status = status
	r.byID[id] = a
	return nil
}

func (r *appointmentsRepo) UpdateTime(ctx context.Context, id int64, slot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.ErrNotFound
	}
	a.Time = slot
	r.byID[id] = a
	return nil
}
