package service

import (
	"context"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"

	"github.com/rs/zerolog"
)

// auditFanout implements ports.AuditNotifier by logging every event,
// persisting it (best-effort), and forwarding it to the external channel.
// Nothing in this path may fail the caller.
type auditFanout struct {
	sink ports.AuditNotifier
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditFanout creates the audit fan-out. sink delivers to the external
// channel (nil disables delivery); repo keeps the durable copy (nil disables
// persistence).
func NewAuditFanout(sink ports.AuditNotifier, repo ports.AuditRepository, log zerolog.Logger) ports.AuditNotifier {
	return &auditFanout{sink: sink, repo: repo, log: log}
}

// Notify fans the event out to the log, the repository, and the sink.
func (a *auditFanout) Notify(ctx context.Context, event *domain.AuditEvent) {
	a.log.Info().
		Str("kind", string(event.Kind)).
		Str("session_id", event.SessionID).
		Str("public_key", event.PublicKey).
		Msg("audit event")

	if a.repo != nil {
		go func(e domain.AuditEvent) {
			if err := a.repo.Create(context.Background(), &e); err != nil {
				a.log.Warn().Err(err).Str("kind", string(e.Kind)).Msg("failed to persist audit event")
			}
		}(*event)
	}

	if a.sink != nil {
		a.sink.Notify(ctx, event)
	}
}
