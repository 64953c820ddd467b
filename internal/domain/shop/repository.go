package shop

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("shop item not found")

type Repository interface {
	Seed(ctx context.Context, items []Item) error
	List(ctx context.Context) ([]Item, error)
	GetByID(ctx context.Context, id int64) (Item, error)
}
