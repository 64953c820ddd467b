package addresses

import (
	"context"
	"errors"
	"sort"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Address
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Address{}, nextID: 1}
}

func (r *testRepo) Seed(ctx context.Context, items []Address) error {
	for _, a := range items {
		r.byID[a.ID] = a
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return nil
}

func (r *testRepo) Create(ctx context.Context, a Address) (Address, error) {
	a.ID = r.nextID
	r.nextID++
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Address, error) {
	out := make([]Address, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Address, error) {
	a, ok := r.byID[id]
	if !ok {
		return Address{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Add_ValidatesAndSelects(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_, err := svc.Add(ctx, AddInput{Label: "Home", Street: " ", City: "Petville", Zip: "12345"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank street, got %v", err)
	}

	a, err := svc.Add(ctx, AddInput{Label: "Home", Street: "123 Sunshine Avenue", City: "Petville", Zip: "12345"})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if svc.Selected() != a.ID {
		t.Fatalf("expected new address selected, got %d", svc.Selected())
	}

	// la siguiente pasa a ser la seleccionada
	b, err := svc.Add(ctx, AddInput{Label: "Work", Street: "456 Business Park Rd", City: "Metropolis", Zip: "67890"})
	if err != nil {
		t.Fatalf("Add #2 error: %v", err)
	}
	if svc.Selected() != b.ID {
		t.Fatalf("expected latest address selected, got %d", svc.Selected())
	}
}

func TestService_Remove_ReassignsSelection(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	a, _ := svc.Add(ctx, AddInput{Label: "Home", Street: "123 Sunshine Avenue", City: "Petville", Zip: "12345"})
	b, _ := svc.Add(ctx, AddInput{Label: "Work", Street: "456 Business Park Rd", City: "Metropolis", Zip: "67890"})

	// borrar la seleccionada => pasa a la primera restante
	if err := svc.Remove(ctx, b.ID); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if svc.Selected() != a.ID {
		t.Fatalf("expected selection to fall back to %d, got %d", a.ID, svc.Selected())
	}

	// borrar la última => sin selección
	if err := svc.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove #2 error: %v", err)
	}
	if svc.Selected() != 0 {
		t.Fatalf("expected no selection, got %d", svc.Selected())
	}
}

func TestService_Remove_NotSelectedKeepsSelection(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	a, _ := svc.Add(ctx, AddInput{Label: "Home", Street: "123 Sunshine Avenue", City: "Petville", Zip: "12345"})
	b, _ := svc.Add(ctx, AddInput{Label: "Work", Street: "456 Business Park Rd", City: "Metropolis", Zip: "67890"})

	if err := svc.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if svc.Selected() != b.ID {
		t.Fatalf("expected selection untouched (%d), got %d", b.ID, svc.Selected())
	}
}

func TestService_RemoveAndSelect_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if err := svc.Remove(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on remove, got %v", err)
	}
	if err := svc.Select(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on select, got %v", err)
	}
}
