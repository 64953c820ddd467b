package notices

import (
	"sync"
	"time"
)

// DismissAfter es cuánto vive un banner si nadie lo cierra antes.
const DismissAfter = 5 * time.Second

// Service maneja el banner de confirmación transitorio. Hay a lo sumo uno
// visible: publicar pisa el anterior (solo el último mensaje está garantizado).
type Service struct {
	mu      sync.Mutex
	message string
	shownAt time.Time
	now     func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

func (s *Service) Publish(message string) {
	s.mu.Lock()
	s.message = message
	s.shownAt = s.now()
	s.mu.Unlock()
}

// Active devuelve el banner vigente; pasado DismissAfter ya no existe.
func (s *Service) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.message == "" {
		return "", false
	}
	if s.now().Sub(s.shownAt) >= DismissAfter {
		s.message = ""
		return "", false
	}
	return s.message, true
}

// Dismiss cierra el banner antes del auto-dismiss.
func (s *Service) Dismiss() {
	s.mu.Lock()
	s.message = ""
	s.mu.Unlock()
}
