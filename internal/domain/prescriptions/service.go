package prescriptions

import (
	"context"
	"errors"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByAppointment(ctx context.Context, appointmentID int64) ([]Prescription, error) {
	if appointmentID <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAppointment(ctx, appointmentID)
}
