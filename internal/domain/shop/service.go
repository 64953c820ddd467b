package shop

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

// List filtra por categoría cuando viene una; categoría vacía = todo el catálogo.
func (s *Service) List(ctx context.Context, category Category) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return items, nil
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Item, error) {
	if id <= 0 {
		return Item{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}
