package service

import (
	"solana-money-mover/internal/core/domain"
)

// Flat fee schedule, denominated in SOL.
const (
	feeBase           = 0.3
	feeDiscountFactor = 0.5
)

// FeeServiceImpl implements ports.FeeService. Stateless; every quote is
// recomputed from the toggles.
type FeeServiceImpl struct{}

// NewFeeService creates a new FeeServiceImpl.
func NewFeeService() *FeeServiceImpl {
	return &FeeServiceImpl{}
}

// Quote computes the additive fee for the enabled toggles, then applies the
// flat discount: final = (base + additive) * 0.5, rounded to 2 decimals.
func (s *FeeServiceImpl) Quote(options domain.FeeOptions) domain.FeeQuote {
	var additive float64

	if options.CustomBanner {
		additive += 0.1
	}
	if options.AdvancedPrivacy {
		additive += 0.5
	}
	if options.ProjectTrend {
		additive += 0.3
	}
	if options.BotService {
		additive += 1.0
	}
	if options.CreatorInfo {
		additive += 0.1
	}
	if options.SocialLinks {
		additive += 0.1
	}
	if options.RevokeFreeze {
		additive += 0.1
	}
	if options.RevokeMint {
		additive += 0.1
	}
	if options.RevokeUpdate {
		additive += 0.1
	}

	return domain.FeeQuote{
		Base:           feeBase,
		Additive:       additive,
		DiscountFactor: feeDiscountFactor,
		Final:          domain.Round2((feeBase + additive) * feeDiscountFactor),
	}
}
