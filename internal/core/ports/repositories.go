package ports

import (
	"context"
	"time"

	"solana-money-mover/internal/core/domain"

	"github.com/google/uuid"
)

// SessionStore is the pluggable key-value store behind the session registry.
// Implementations enforce TTL (Redis natively, the in-memory store via a
// scheduled sweep).
type SessionStore interface {
	// Put stores a session under its token with the given TTL.
	Put(ctx context.Context, session *domain.Session, ttl time.Duration) error
	// Get returns the session for a token, or nil if unknown or expired.
	Get(ctx context.Context, token string) (*domain.Session, error)
}

// TransferRepository persists consolidation history. Best-effort: the engine
// logs and continues when writes fail.
type TransferRepository interface {
	Create(ctx context.Context, record *domain.TransferRecord) error
	Complete(ctx context.Context, id uuid.UUID, record *domain.TransferRecord) error
	ListByOwner(ctx context.Context, owner string, limit int) ([]domain.TransferRecord, error)
}

// AuditRepository keeps a durable copy of dispatched audit events.
type AuditRepository interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
}
