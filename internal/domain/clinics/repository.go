package clinics

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("clinic not found")

type Repository interface {
	Seed(ctx context.Context, items []Clinic) error
	List(ctx context.Context) ([]Clinic, error)
	GetByID(ctx context.Context, id int64) (Clinic, error)
	SetPinned(ctx context.Context, id int64, pinned bool) error
}
