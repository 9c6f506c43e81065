package entity

import (
	"github.com/google/uuid"

	"github.com/luzbrill/pos-terminal/pkg/capability"
)

// Session identifies the authenticated operator behind a request. It is built
// once per request from the verified token and passed explicitly; nothing in
// this service reads ambient global state.
type Session struct {
	UserID     uuid.UUID
	TerminalID string
	Caps       capability.Set
}
