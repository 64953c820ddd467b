package views

import (
	"context"
	"errors"
	"sync"

	"pet-care-hub/internal/domain/appointments"
)

var ErrInvalidInput = errors.New("invalid input")

// AppointmentFinder es la vista que necesita highlight para resolver el
// status de la cita destino.
type AppointmentFinder interface {
	GetByID(ctx context.Context, id int64) (appointments.Appointment, error)
}

// Snapshot es el estado de navegación visible.
type Snapshot struct {
	Screen            Screen
	Modal             Modal
	AppointmentFilter appointments.Status

	// HighlightedID marca la cita a scrollear/expandir; 0 = ninguna.
	// Es un lookup explícito por id, dueño de este módulo, no inferido
	// del ciclo de render.
	HighlightedID int64
}

type Service struct {
	finder AppointmentFinder

	mu    sync.Mutex
	state Snapshot
}

func NewService(finder AppointmentFinder) *Service {
	return &Service{
		finder: finder,
		state: Snapshot{
			Screen:            ScreenHome,
			Modal:             ModalNone,
			AppointmentFilter: appointments.StatusUpcoming,
		},
	}
}

func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Service) SetScreen(screen Screen) {
	s.mu.Lock()
	s.state.Screen = screen
	s.mu.Unlock()
}

// OpenModal reemplaza el modal activo (nunca hay dos a la vez).
func (s *Service) OpenModal(modal Modal) {
	s.mu.Lock()
	s.state.Modal = modal
	s.mu.Unlock()
}

func (s *Service) CloseModal() {
	s.mu.Lock()
	s.state.Modal = ModalNone
	s.mu.Unlock()
}

// Highlight navega a la vista de citas con el filtro en el status de la cita
// destino y la marca para scrollear. Las canceladas no tienen vista propia:
// highlight sobre una cancelada es no-op.
func (s *Service) Highlight(ctx context.Context, appointmentID int64) (Snapshot, error) {
	a, err := s.finder.GetByID(ctx, appointmentID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Status == appointments.StatusCancelled {
		return s.state, nil
	}

	s.state.Screen = ScreenAppointments
	s.state.AppointmentFilter = a.Status
	s.state.HighlightedID = a.ID
	return s.state, nil
}

// ClearHighlight se llama cuando la UI ya scrolleó al destino.
func (s *Service) ClearHighlight() {
	s.mu.Lock()
	s.state.HighlightedID = 0
	s.mu.Unlock()
}
