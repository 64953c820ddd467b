package addresses

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("address not found")

type Repository interface {
	Seed(ctx context.Context, items []Address) error

	// Create asigna el id y devuelve la dirección creada.
	Create(ctx context.Context, a Address) (Address, error)
	List(ctx context.Context) ([]Address, error)
	GetByID(ctx context.Context, id int64) (Address, error)
	Delete(ctx context.Context, id int64) error
}
