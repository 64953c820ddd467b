package cart

import "context"

type Repository interface {
	// List preserva el orden de inserción de los renglones.
	List(ctx context.Context) ([]Line, error)
	Get(ctx context.Context, itemID int64) (Line, bool, error)
	Upsert(ctx context.Context, line Line) error
	Remove(ctx context.Context, itemID int64) error
}
