package postgres

import (
	"context"
	"fmt"

	"solana-money-mover/internal/core/domain"

	"github.com/google/uuid"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Create inserts the starting record of a consolidation run.
func (r *TransferRepo) Create(ctx context.Context, rec *domain.TransferRecord) error {
	query := `INSERT INTO transfers (id, owner_address, destination, status, total_value_usd, transferred_count, signature, error_message, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		rec.ID, rec.OwnerAddress, rec.Destination, rec.Status,
		rec.TotalValueUSD, rec.TransferredCount, rec.Signature,
		rec.ErrorMessage, rec.CreatedAt, rec.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// Complete writes the terminal state of a consolidation run.
func (r *TransferRepo) Complete(ctx context.Context, id uuid.UUID, rec *domain.TransferRecord) error {
	query := `UPDATE transfers
		SET status = $2, total_value_usd = $3, transferred_count = $4, signature = $5, error_message = $6, completed_at = $7
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		id, rec.Status, rec.TotalValueUSD, rec.TransferredCount,
		rec.Signature, rec.ErrorMessage, rec.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transfer %s not found", id)
	}
	return nil
}

// ListByOwner returns the most recent consolidation runs for an owner.
func (r *TransferRepo) ListByOwner(ctx context.Context, owner string, limit int) ([]domain.TransferRecord, error) {
	query := `SELECT id, owner_address, destination, status, total_value_usd, transferred_count, signature, error_message, created_at, completed_at
		FROM transfers WHERE owner_address = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()

	var records []domain.TransferRecord
	for rows.Next() {
		var rec domain.TransferRecord
		if err := rows.Scan(
			&rec.ID, &rec.OwnerAddress, &rec.Destination, &rec.Status,
			&rec.TotalValueUSD, &rec.TransferredCount, &rec.Signature,
			&rec.ErrorMessage, &rec.CreatedAt, &rec.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfers: %w", err)
	}
	return records, nil
}
