package notices

import (
	"testing"
	"time"
)

func TestService_PublishAndExpiry(t *testing.T) {
	svc := NewService()

	now := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if _, ok := svc.Active(); ok {
		t.Fatalf("expected no banner initially")
	}

	svc.Publish("Appointment booked at Happy Paws Veterinary Clinic for 09:00 AM!")

	msg, ok := svc.Active()
	if !ok || msg != "Appointment booked at Happy Paws Veterinary Clinic for 09:00 AM!" {
		t.Fatalf("expected banner visible, got %q ok=%v", msg, ok)
	}

	// justo antes del auto-dismiss sigue visible
	now = now.Add(DismissAfter - time.Millisecond)
	if _, ok := svc.Active(); !ok {
		t.Fatalf("expected banner still visible before deadline")
	}

	// al cumplirse la ventana desaparece
	now = now.Add(time.Millisecond)
	if _, ok := svc.Active(); ok {
		t.Fatalf("expected banner expired")
	}
}

func TestService_PublishOverwrites(t *testing.T) {
	svc := NewService()
	now := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Publish("first")
	now = now.Add(3 * time.Second)
	svc.Publish("second")

	// el segundo publish reinicia la ventana
	now = now.Add(3 * time.Second)
	msg, ok := svc.Active()
	if !ok || msg != "second" {
		t.Fatalf("expected second banner active, got %q ok=%v", msg, ok)
	}
}

func TestService_Dismiss(t *testing.T) {
	svc := NewService()
	now := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Publish("bye")
	svc.Dismiss()

	if _, ok := svc.Active(); ok {
		t.Fatalf("expected banner dismissed")
	}
}
