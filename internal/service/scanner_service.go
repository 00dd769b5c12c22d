package service

import (
	"context"
	"fmt"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"

	"github.com/rs/zerolog"
)

// ChainScanner implements ports.Scanner against the chain query collaborator.
type ChainScanner struct {
	chain ports.ChainQuery
	log   zerolog.Logger
}

// NewChainScanner creates a new ChainScanner.
func NewChainScanner(chain ports.ChainQuery, log zerolog.Logger) *ChainScanner {
	return &ChainScanner{chain: chain, log: log}
}

// Scan enumerates the owner's native balance and token holdings. A token
// account that cannot be read is skipped; the scan aborts only when the
// balance or account-list queries themselves fail.
func (s *ChainScanner) Scan(ctx context.Context, owner string) (*domain.ScanResult, error) {
	native, err := s.chain.GetNativeBalance(ctx, owner)
	if err != nil {
		return nil, apperror.ErrChainQuery(fmt.Errorf("native balance for %s: %w", owner, err))
	}

	accounts, err := s.chain.ListTokenAccounts(ctx, owner)
	if err != nil {
		return nil, apperror.ErrChainQuery(fmt.Errorf("token accounts for %s: %w", owner, err))
	}

	holdings := make([]domain.Holding, 0, len(accounts))
	for _, acc := range accounts {
		bal, err := s.chain.GetTokenAccountBalance(ctx, acc.Address)
		if err != nil {
			s.log.Warn().Err(err).
				Str("account", acc.Address).
				Str("mint", acc.Mint).
				Msg("skipping unreadable token account")
			continue
		}
		if bal.RawAmount == 0 {
			continue
		}
		holdings = append(holdings, domain.Holding{
			Mint:      acc.Mint,
			RawAmount: bal.RawAmount,
			Decimals:  bal.Decimals,
		})
	}

	s.log.Debug().
		Str("owner", owner).
		Float64("native_balance", native).
		Int("holdings", len(holdings)).
		Msg("holdings scan complete")

	return &domain.ScanResult{
		OwnerAddress:  owner,
		NativeBalance: native,
		Holdings:      holdings,
	}, nil
}
