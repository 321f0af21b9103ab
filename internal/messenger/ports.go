package messenger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
)

// User — a Messenger end user, keyed by PSID. Created on first contact,
// inbound or outbound.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// MessageEntry — one row of the per-user message log. Immutable once
// written.
type MessageEntry struct {
	ID        uuid.UUID
	UserID    string
	Text      string
	Direction Direction
	Status    Status
	CreatedAt time.Time
}

// Repo — persistence
type Repo interface {
	EnsureUser(ctx context.Context, userID string) (*User, error)
	Append(ctx context.Context, userID, text string, direction Direction, status Status) (*MessageEntry, error)
	// RecentByUser returns up to limit entries, newest first.
	RecentByUser(ctx context.Context, userID string, limit int) ([]MessageEntry, error)
}

// Outbound — the platform send API
type Outbound interface {
	Send(ctx context.Context, recipientID, text string) error
}

// Service — pipeline orchestration
type Service interface {
	HandleIncoming(ctx context.Context, senderID, text string) error
	SendMessage(ctx context.Context, recipientID, text string) error
}
