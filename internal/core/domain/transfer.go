package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus is the persisted state of a consolidation run.
type TransferStatus string

const (
	TransferStatusStarted   TransferStatus = "STARTED"
	TransferStatusSucceeded TransferStatus = "SUCCEEDED"
	TransferStatusFailed    TransferStatus = "FAILED"
)

// TransferRecord is the durable history row for one consolidation run.
// Persistence is best-effort bookkeeping; the in-flight workflow never
// depends on it.
type TransferRecord struct {
	ID               uuid.UUID      `json:"id"`
	OwnerAddress     string         `json:"owner_address"`
	Destination      string         `json:"destination"`
	Status           TransferStatus `json:"status"`
	TotalValueUSD    float64        `json:"total_value_usd"`
	TransferredCount int            `json:"transferred_count"`
	Signature        *string        `json:"signature,omitempty"`
	ErrorMessage     *string        `json:"error_message,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

// Terminal reports whether the record reached a final state.
func (r *TransferRecord) Terminal() bool {
	return r.Status == TransferStatusSucceeded || r.Status == TransferStatusFailed
}
