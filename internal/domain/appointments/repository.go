package appointments

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Seed(ctx context.Context, items []Appointment) error

	// Create asigna el id y devuelve la cita creada.
	Create(ctx context.Context, a Appointment) (Appointment, error)
	GetByID(ctx context.Context, id int64) (Appointment, error)

	// List* preservan el orden de creación del backing store.
	List(ctx context.Context) ([]Appointment, error)
	ListByStatus(ctx context.Context, status Status) ([]Appointment, error)

	UpdateStatus(ctx context.Context, id int64, status Status) error
	UpdateTime(ctx context.Context, id int64, slot string) error
}
