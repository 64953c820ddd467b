package addresses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrInvalidInput = errors.New("invalid input")

// Service es el único dueño del puntero de selección: exactamente cero o una
// dirección seleccionada, y la selección siempre apunta a una dirección existente.
type Service struct {
	repo Repository

	mu       sync.Mutex
	selected int64 // 0 = ninguna
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type AddInput struct {
	Label  string
	Street string
	City   string
	Zip    string
}

func (in AddInput) validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Label, validation.Required),
		validation.Field(&in.Street, validation.Required),
		validation.Field(&in.City, validation.Required),
		validation.Field(&in.Zip, validation.Required),
	)
}

// Add crea la dirección y la deja seleccionada (comportamiento del formulario:
// la recién agregada siempre pasa a ser la activa).
func (s *Service) Add(ctx context.Context, in AddInput) (Address, error) {
	in.Label = strings.TrimSpace(in.Label)
	in.Street = strings.TrimSpace(in.Street)
	in.City = strings.TrimSpace(in.City)
	in.Zip = strings.TrimSpace(in.Zip)

	if err := in.validate(); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, Address{
		Label:  in.Label,
		Street: in.Street,
		City:   in.City,
		Zip:    in.Zip,
	})
	if err != nil {
		return Address{}, err
	}

	s.mu.Lock()
	s.selected = created.ID
	s.mu.Unlock()

	return created, nil
}

// Remove borra la dirección. Si era la seleccionada, la selección pasa a la
// primera dirección restante, o a ninguna si la colección quedó vacía.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected != id {
		return nil
	}

	remaining, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		s.selected = 0
		return nil
	}
	s.selected = remaining[0].ID
	return nil
}

// Select exige que el id exista.
func (s *Service) Select(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.selected = id
	s.mu.Unlock()
	return nil
}

func (s *Service) List(ctx context.Context) ([]Address, error) {
	return s.repo.List(ctx)
}

// Selected devuelve el id seleccionado, o 0 si no hay ninguno.
func (s *Service) Selected() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}
