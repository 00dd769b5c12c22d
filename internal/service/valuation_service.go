package service

import (
	"context"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"

	"github.com/rs/zerolog"
)

// ValuationFilter implements ports.Valuer: it prices a scan result against
// the oracle and keeps only holdings worth more than the transfer threshold.
//
// This is a best-effort pass. A failed price lookup excludes the affected
// asset from the total; it never fails the whole valuation.
type ValuationFilter struct {
	oracle      ports.PriceOracle
	minValueUSD float64
	feeReserve  float64 // SOL left behind to cover network fees
	log         zerolog.Logger
}

// NewValuationFilter creates a new ValuationFilter.
func NewValuationFilter(oracle ports.PriceOracle, minValueUSD, feeReserve float64, log zerolog.Logger) *ValuationFilter {
	return &ValuationFilter{
		oracle:      oracle,
		minValueUSD: minValueUSD,
		feeReserve:  feeReserve,
		log:         log,
	}
}

// Value prices and filters a scan result.
func (f *ValuationFilter) Value(ctx context.Context, scan *domain.ScanResult) (*domain.Valuation, error) {
	v := &domain.Valuation{Transferable: []domain.ValuedHolding{}}

	// Native remainder after the fee reserve. The native contribution is not
	// subject to the minimum-value threshold; only token holdings are.
	if remainder := scan.NativeBalance - f.feeReserve; remainder > 0 {
		v.NativeTransferAmount = remainder

		price, err := f.oracle.GetPrice(ctx, domain.NativeAssetID)
		if err != nil {
			f.log.Warn().Err(err).Msg("native price unavailable, excluding native value from total")
		} else {
			v.NativeUSDValue = remainder * price
			v.TotalValueUSD += v.NativeUSDValue
		}
	}

	if len(scan.Holdings) == 0 {
		return v, nil
	}

	prices, err := f.oracle.GetPrices(ctx, distinctMints(scan.Holdings))
	if err != nil {
		f.log.Warn().Err(err).Msg("token price batch failed, excluding all token values")
		prices = map[string]float64{}
	}

	for _, h := range scan.Holdings {
		price, ok := prices[h.Mint]
		if !ok || price <= 0 {
			f.log.Debug().Str("mint", h.Mint).Msg("no price for mint, excluded")
			continue
		}
		usd := h.UIAmount() * price
		if usd <= f.minValueUSD {
			continue
		}
		v.Transferable = append(v.Transferable, domain.ValuedHolding{
			Holding:   h,
			UnitPrice: price,
			USDValue:  usd,
		})
		v.TotalValueUSD += usd
	}

	return v, nil
}

func distinctMints(holdings []domain.Holding) []string {
	seen := make(map[string]struct{}, len(holdings))
	mints := make([]string, 0, len(holdings))
	for _, h := range holdings {
		if _, ok := seen[h.Mint]; ok {
			continue
		}
		seen[h.Mint] = struct{}{}
		mints = append(mints, h.Mint)
	}
	return mints
}
