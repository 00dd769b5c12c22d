package ports

import (
	"context"

	"solana-money-mover/internal/core/domain"
)

// TokenAccount identifies one token account owned by a wallet.
type TokenAccount struct {
	Address string // token account address
	Mint    string
}

// TokenBalance is the balance of a single token account. The mint is not
// part of the balance read; callers carry it over from the account listing.
type TokenBalance struct {
	RawAmount uint64
	Decimals  uint8
}

// ChainQuery reads balances and token accounts from the chain.
type ChainQuery interface {
	GetNativeBalance(ctx context.Context, address string) (float64, error)
	ListTokenAccounts(ctx context.Context, owner string) ([]TokenAccount, error)
	GetTokenAccountBalance(ctx context.Context, account string) (*TokenBalance, error)
}

// PriceOracle fetches current USD unit prices from the quote service.
// GetPrices returns a partial map on per-asset failure: a missing entry means
// the price is unavailable, not that the whole call failed.
type PriceOracle interface {
	GetPrice(ctx context.Context, assetID string) (float64, error)
	GetPrices(ctx context.Context, assetIDs []string) (map[string]float64, error)
}

// TransferInstruction describes one transfer handed to the broadcaster.
// AssetID is domain.NativeAssetID for the native remainder, otherwise a mint.
type TransferInstruction struct {
	From    string
	To      string
	AssetID string
	Amount  float64 // whole-token units
}

// Broadcaster submits transfers to the chain. The shipped implementation is a
// dry run that simulates signatures; a real signer/broadcaster plugs in behind
// the same interface.
type Broadcaster interface {
	SubmitTransfer(ctx context.Context, ix TransferInstruction) (string, error)
}

// AuditNotifier dispatches lifecycle events to the external notification
// channel. Best-effort: implementations must never propagate delivery
// failures to the caller.
type AuditNotifier interface {
	Notify(ctx context.Context, event *domain.AuditEvent)
}
