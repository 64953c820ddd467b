package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pet-care-hub/internal/domain/clinics"
	"pet-care-hub/internal/domain/pets"
)

const maxPetsPerBooking = 5

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrTerminalStatus       = errors.New("appointment status is terminal")
)

// ClinicDirectory y PetDirectory son las vistas de solo lectura que el
// booking necesita de los otros módulos.
type ClinicDirectory interface {
	GetByID(ctx context.Context, id int64) (clinics.Clinic, error)
}

type PetDirectory interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type Service struct {
	repo    Repository
	clinics ClinicDirectory
	pets    PetDirectory
	now     func() time.Time
}

func NewService(repo Repository, clinicDir ClinicDirectory, petDir PetDirectory) *Service {
	return &Service{
		repo:    repo,
		clinics: clinicDir,
		pets:    petDir,
		now:     time.Now,
	}
}

// PetSelection es la selección por mascota del booking: tags prearmados
// y/o texto libre. Al menos uno de los dos.
type PetSelection struct {
	PetID    int64
	Concerns []string
	Details  string
}

type BookInput struct {
	ClinicID int64
	Slot     string
	Modality Modality // opcional; default in-person
	DoctorID int64    // opcional; default primer doctor de la clínica
	Pets     []PetSelection
}

func (in BookInput) validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ClinicID, validation.Required, validation.Min(int64(1))),
		validation.Field(&in.Slot, validation.Required),
		validation.Field(&in.Pets, validation.Required, validation.Length(1, maxPetsPerBooking)),
	)
}

// Book crea una cita por mascota seleccionada. Valida todo antes de mutar:
// si algo falla no se crea ninguna cita.
func (s *Service) Book(ctx context.Context, in BookInput) ([]Appointment, error) {
	if err := in.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	clinic, err := s.clinics.GetByID(ctx, in.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("clinic: %w", err)
	}

	if !clinic.HasSlot(in.Slot) {
		return nil, fmt.Errorf("%w: slot %q is not available at clinic", ErrInvalidInput, in.Slot)
	}

	modality := in.Modality
	if modality == "" {
		modality = ModalityInPerson
	}
	if _, ok := ParseModality(string(modality)); !ok {
		return nil, fmt.Errorf("%w: unknown modality %q", ErrInvalidInput, modality)
	}

	doctorID := in.DoctorID
	if doctorID == 0 && len(clinic.Doctors) > 0 {
		doctorID = clinic.Doctors[0].ID
	}
	if doctorID != 0 && !clinic.HasDoctor(doctorID) {
		return nil, fmt.Errorf("%w: doctor %d does not belong to clinic", ErrInvalidInput, doctorID)
	}

	seen := make(map[int64]struct{}, len(in.Pets))
	reasons := make([]string, 0, len(in.Pets))
	for _, sel := range in.Pets {
		if _, dup := seen[sel.PetID]; dup {
			return nil, fmt.Errorf("%w: pet %d selected twice", ErrInvalidInput, sel.PetID)
		}
		seen[sel.PetID] = struct{}{}

		if _, err := s.pets.GetByID(ctx, sel.PetID); err != nil {
			return nil, fmt.Errorf("pet: %w", err)
		}

		reason, ok := composeReason(sel)
		if !ok {
			return nil, fmt.Errorf("%w: pet %d needs at least one concern or details", ErrInvalidInput, sel.PetID)
		}
		reasons = append(reasons, reason)
	}

	date := s.now().Format("2006-01-02")

	created := make([]Appointment, 0, len(in.Pets))
	for i, sel := range in.Pets {
		a, err := s.repo.Create(ctx, Appointment{
			ClinicID: clinic.ID,
			PetID:    sel.PetID,
			Date:     date,
			Time:     in.Slot,
			Reason:   reasons[i],
			Status:   StatusUpcoming,
			Modality: modality,
			DoctorID: doctorID,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, a)
	}
	return created, nil
}

// composeReason arma el texto final con el mismo formato del formulario:
// "Concerns: a, b. Details: c". Devuelve ok=false si no hay nada.
func composeReason(sel PetSelection) (string, bool) {
	concerns := make([]string, 0, len(sel.Concerns))
	for _, c := range sel.Concerns {
		if c = strings.TrimSpace(c); c != "" {
			concerns = append(concerns, c)
		}
	}
	details := strings.TrimSpace(sel.Details)

	if len(concerns) == 0 && details == "" {
		return "", false
	}

	var b strings.Builder
	if len(concerns) > 0 {
		b.WriteString("Concerns: " + strings.Join(concerns, ", ") + ". ")
	}
	if details != "" {
		b.WriteString("Details: " + details)
	}
	return strings.TrimSpace(b.String()), true
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	if id <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

// ListByStatus filtra sin reordenar; el orden es el del backing store.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Appointment, error) {
	return s.repo.ListByStatus(ctx, status)
}

// Cancel exige confirmación explícita (es irreversible).
// Solo upcoming puede cancelarse; past/cancelled devuelven ErrTerminalStatus.
func (s *Service) Cancel(ctx context.Context, id int64, confirmed bool) (Appointment, error) {
	if !confirmed {
		return Appointment{}, ErrConfirmationRequired
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.Status != StatusUpcoming {
		return Appointment{}, fmt.Errorf("%w: cannot cancel %s appointment", ErrTerminalStatus, a.Status)
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return Appointment{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// Reschedule cambia solo el time; el status queda upcoming.
// El nuevo slot debe pertenecer a la clínica de la cita y ser distinto al actual.
func (s *Service) Reschedule(ctx context.Context, id int64, newSlot string) (Appointment, error) {
	newSlot = strings.TrimSpace(newSlot)
	if newSlot == "" {
		return Appointment{}, fmt.Errorf("%w: slot required", ErrInvalidInput)
	}

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.Status != StatusUpcoming {
		return Appointment{}, fmt.Errorf("%w: cannot reschedule %s appointment", ErrTerminalStatus, a.Status)
	}
	if newSlot == a.Time {
		return Appointment{}, fmt.Errorf("%w: new slot equals current time", ErrInvalidInput)
	}

	clinic, err := s.clinics.GetByID(ctx, a.ClinicID)
	if err != nil {
		return Appointment{}, fmt.Errorf("clinic: %w", err)
	}
	if !clinic.HasSlot(newSlot) {
		return Appointment{}, fmt.Errorf("%w: slot %q is not available at clinic", ErrInvalidInput, newSlot)
	}

	if err := s.repo.UpdateTime(ctx, id, newSlot); err != nil {
		return Appointment{}, err
	}
	return s.repo.GetByID(ctx, id)
}
