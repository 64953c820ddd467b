package assistant

import "context"

// Session identifica una conversación ya creada en el servicio remoto.
type Session struct {
	ID string
}

// ChatService es el contrato mínimo contra el servicio de chat remoto.
// El servicio se trata como capability opaca: crear sesión y mandar texto.
type ChatService interface {
	CreateSession(ctx context.Context) (Session, error)
	Send(ctx context.Context, session Session, text string) (string, error)
}
