package concierge

// State del adapter. init fallido deja el estado en error (persistente);
// un send fallido vuelve a ready porque se trata como transitorio.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateReady         State = "ready"
	StateAwaitingReply State = "awaiting-reply"
	StateError         State = "error"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message es una entrada del transcript (append-only).
type Message struct {
	Sender Sender
	Text   string
}
