package prescriptions

import "context"

type Repository interface {
	Seed(ctx context.Context, items []Prescription) error
	ListByAppointment(ctx context.Context, appointmentID int64) ([]Prescription, error)
}
