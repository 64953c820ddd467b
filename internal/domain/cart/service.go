package cart

import (
	"context"
	"errors"
	"fmt"

	"pet-care-hub/internal/domain/shop"
)

var ErrInvalidInput = errors.New("invalid input")

// Catalog es la vista del shop que el carrito necesita
// (validar items y conocer precios).
type Catalog interface {
	GetByID(ctx context.Context, id int64) (shop.Item, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Add suma quantity al renglón existente o inserta uno nuevo.
// quantity debe ser un entero positivo.
func (s *Service) Add(ctx context.Context, itemID int64, quantity int) (Line, error) {
	if quantity <= 0 {
		return Line{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	if _, err := s.catalog.GetByID(ctx, itemID); err != nil {
		return Line{}, fmt.Errorf("item: %w", err)
	}

	line, ok, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return Line{}, err
	}
	if ok {
		line.Quantity += quantity
	} else {
		line = Line{ItemID: itemID, Quantity: quantity}
	}

	if err := s.repo.Upsert(ctx, line); err != nil {
		return Line{}, err
	}
	return line, nil
}

// UpdateQuantity setea la cantidad exacta; <= 0 elimina el renglón.
func (s *Service) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	if quantity <= 0 {
		return s.repo.Remove(ctx, itemID)
	}

	_, ok, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: item %d is not in the cart", ErrInvalidInput, itemID)
	}
	return s.repo.Upsert(ctx, Line{ItemID: itemID, Quantity: quantity})
}

// Remove elimina incondicionalmente; si el item no está es no-op silencioso.
func (s *Service) Remove(ctx context.Context, itemID int64) error {
	return s.repo.Remove(ctx, itemID)
}

func (s *Service) List(ctx context.Context) ([]Line, error) {
	return s.repo.List(ctx)
}

// Subtotal se calcula fresco en cada llamada; nunca hay total cacheado.
func (s *Service) Subtotal(ctx context.Context) (float64, error) {
	lines, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, line := range lines {
		item, err := s.catalog.GetByID(ctx, line.ItemID)
		if err != nil {
			return 0, fmt.Errorf("item: %w", err)
		}
		total += item.Price * float64(line.Quantity)
	}
	return total, nil
}
