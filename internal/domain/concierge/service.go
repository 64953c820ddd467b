package concierge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pet-care-hub/internal/ports/assistant"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotReady: send sin sesión lista (uninitialized o error).
	ErrNotReady = errors.New("concierge is not ready")

	// ErrBusy: ya hay un send en vuelo. No hay cola: un request a la vez.
	ErrBusy = errors.New("concierge is awaiting a reply")
)

const (
	greetingMessage = "Hello! I'm your AI Concierge. How can I assist you with your pet's needs today? You can ask me about symptoms, appointments, or product recommendations."

	initFailedMessage = "Sorry, I couldn't connect to the AI service. Please try again later."
	sendFailedMessage = "I'm having trouble responding right now."
)

// Service es la máquina de estados del concierge sobre el servicio remoto.
// El transcript arranca con el saludo y solo crece.
type Service struct {
	remote assistant.ChatService

	mu         sync.Mutex
	state      State
	session    assistant.Session
	transcript []Message
}

func NewService(remote assistant.ChatService) *Service {
	return &Service{
		remote:     remote,
		state:      StateUninitialized,
		transcript: []Message{{Sender: SenderAI, Text: greetingMessage}},
	}
}

// Initialize crea la sesión remota. Idempotente en ready; desde error se
// puede reintentar. El fallo agrega el fallback fijo al transcript y deja
// el estado en error.
func (s *Service) Initialize(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateAwaitingReply:
		s.mu.Unlock()
		return ErrBusy
	case StateReady:
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	var (
		session assistant.Session
		err     error
	)
	if s.remote == nil {
		err = errors.New("no assistant backend configured")
	} else {
		session, err = s.remote.CreateSession(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateError
		s.transcript = append(s.transcript, Message{Sender: SenderAI, Text: initFailedMessage})
		return fmt.Errorf("create session: %w", err)
	}

	s.session = session
	s.state = StateReady
	return nil
}

// Send solo es válido desde ready. El mensaje del usuario se agrega de forma
// optimista antes de llamar al servicio remoto. Un fallo remoto agrega el
// fallback y vuelve a ready (no a error): se trata como transitorio.
// Devuelve la entrada de respuesta (real o fallback).
func (s *Service) Send(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}

	s.mu.Lock()
	switch s.state {
	case StateAwaitingReply:
		s.mu.Unlock()
		return Message{}, ErrBusy
	case StateUninitialized, StateError:
		s.mu.Unlock()
		return Message{}, ErrNotReady
	}

	s.transcript = append(s.transcript, Message{Sender: SenderUser, Text: text})
	s.state = StateAwaitingReply
	session := s.session
	s.mu.Unlock()

	replyText, err := s.remote.Send(ctx, session, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	var reply Message
	if err != nil {
		reply = Message{Sender: SenderAI, Text: sendFailedMessage}
	} else {
		reply = Message{Sender: SenderAI, Text: replyText}
	}

	s.transcript = append(s.transcript, reply)
	s.state = StateReady
	return reply, nil
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transcript devuelve una copia; el slice interno nunca se comparte.
func (s *Service) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}
