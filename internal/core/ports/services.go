package ports

import (
	"context"

	"solana-money-mover/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// ConnectRequest holds validated input for a wallet connection.
type ConnectRequest struct {
	PublicKey  string
	ClientInfo string
}

// SessionService gates access to the consolidation workflow.
type SessionService interface {
	Connect(ctx context.Context, req ConnectRequest) (*domain.Session, error)
	Lookup(ctx context.Context, token string) (*domain.Session, error)
}

// Scanner enumerates an owner's native balance and token holdings.
type Scanner interface {
	Scan(ctx context.Context, owner string) (*domain.ScanResult, error)
}

// Valuer prices a scan result and filters it by the transfer threshold.
type Valuer interface {
	Value(ctx context.Context, scan *domain.ScanResult) (*domain.Valuation, error)
}

// TransferAllRequest holds validated input for a consolidation run.
type TransferAllRequest struct {
	SessionToken string
	Destination  string
}

// MoverService is the consolidation engine: scan, value, transfer, report.
// Input errors (invalid session or destination) are returned as errors;
// workflow failures are reported inside the result with Success=false.
type MoverService interface {
	TransferAll(ctx context.Context, req TransferAllRequest) (*domain.ConsolidationResult, error)
}

// FeeService computes additive fee quotes over feature toggles.
type FeeService interface {
	Quote(options domain.FeeOptions) domain.FeeQuote
}
