package clinics

import (
	"context"
	"errors"
	"sort"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve las clínicas con las pineadas primero y el resto por distancia,
// que es el orden del home.
func (s *Service) List(ctx context.Context) ([]Clinic, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Pinned != items[j].Pinned {
			return items[i].Pinned
		}
		return items[i].DistanceKM < items[j].DistanceKM
	})
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Clinic, error) {
	if id <= 0 {
		return Clinic{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// TogglePin invierte el flag pinned; es la única mutación sobre clínicas.
func (s *Service) TogglePin(ctx context.Context, id int64) (Clinic, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return Clinic{}, err
	}
	if err := s.repo.SetPinned(ctx, id, !c.Pinned); err != nil {
		return Clinic{}, err
	}
	return s.repo.GetByID(ctx, id)
}
