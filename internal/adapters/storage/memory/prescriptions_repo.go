package memory

import (
	"context"
	"sort"
	"sync"

	"pet-care-hub/internal/domain/prescriptions"
)

type prescriptionsRepo struct {
	mu   sync.RWMutex
	byID map[int64]prescriptions.Prescription
}

func NewPrescriptionsRepo() prescriptions.Repository {
	return &prescriptionsRepo{byID: make(map[int64]prescriptions.Prescription)}
}

func (r *prescriptionsRepo) Seed(ctx context.Context, items []prescriptions.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]prescriptions.Prescription, len(items))
	for _, p := range items {
		r.byID[p.ID] = p
	}
	return nil
}

func (r *prescriptionsRepo) ListByAppointment(ctx context.Context, appointmentID int64) ([]prescriptions.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prescriptions.Prescription, 0)
	for _, p := range r.byID {
		if p.AppointmentID == appointmentID {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
