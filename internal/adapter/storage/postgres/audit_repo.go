package postgres

import (
	"context"
	"fmt"

	"solana-money-mover/internal/core/domain"

	"github.com/google/uuid"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts an audit event.
func (r *AuditRepo) Create(ctx context.Context, event *domain.AuditEvent) error {
	query := `INSERT INTO audit_events (id, kind, public_key, session_id, client_info, destination, signature, total_value, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		uuid.New(), string(event.Kind), event.PublicKey, event.SessionID,
		event.ClientInfo, event.Destination, event.Signature,
		event.TotalValue, event.Error, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
