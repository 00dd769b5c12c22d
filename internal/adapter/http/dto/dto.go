package dto

import "solana-money-mover/internal/core/domain"

// ConnectWalletRequest is the request body for wallet connection.
type ConnectWalletRequest struct {
	PublicKey  string `json:"public_key" binding:"required,solana_address"`
	ClientInfo string `json:"client_info,omitempty" binding:"max=512"`
}

// ConnectWalletResponse is the response body for successful connection.
type ConnectWalletResponse struct {
	SessionToken string `json:"session_token"`
	PublicKey    string `json:"public_key"`
	ConnectedAt  string `json:"connected_at"`
}

// TransferRequest is the request body for asset consolidation.
type TransferRequest struct {
	SessionToken string `json:"session_token" binding:"required"`
	Destination  string `json:"destination" binding:"required,solana_address"`
}

// TransferResponse is the response body for a consolidation run.
type TransferResponse struct {
	Success          bool    `json:"success"`
	Signature        string  `json:"signature,omitempty"`
	TotalValueUSD    float64 `json:"total_value_usd"`
	TransferredCount int     `json:"transferred_count"`
	Message          string  `json:"message,omitempty"`
	Error            string  `json:"error,omitempty"`
}

// FeeQuoteRequest is the request body for a fee quote. All toggles default
// to off.
type FeeQuoteRequest struct {
	CustomBanner    bool `json:"customBanner"`
	AdvancedPrivacy bool `json:"advancedPrivacy"`
	ProjectTrend    bool `json:"projectTrend"`
	BotService      bool `json:"botService"`
	CreatorInfo     bool `json:"creatorInfo"`
	SocialLinks     bool `json:"socialLinks"`
	RevokeFreeze    bool `json:"revokeFreeze"`
	RevokeMint      bool `json:"revokeMint"`
	RevokeUpdate    bool `json:"revokeUpdate"`
}

// Options converts the request into domain fee options.
func (r FeeQuoteRequest) Options() domain.FeeOptions {
	return domain.FeeOptions{
		CustomBanner:    r.CustomBanner,
		AdvancedPrivacy: r.AdvancedPrivacy,
		ProjectTrend:    r.ProjectTrend,
		BotService:      r.BotService,
		CreatorInfo:     r.CreatorInfo,
		SocialLinks:     r.SocialLinks,
		RevokeFreeze:    r.RevokeFreeze,
		RevokeMint:      r.RevokeMint,
		RevokeUpdate:    r.RevokeUpdate,
	}
}

// FeeQuoteResponse is the response body for a fee quote.
type FeeQuoteResponse struct {
	Base           float64 `json:"base"`
	Additive       float64 `json:"additive"`
	DiscountFactor float64 `json:"discount_factor"`
	Final          float64 `json:"final"`
}

// PricesResponse is the response body for a price query.
type PricesResponse struct {
	Prices map[string]float64 `json:"prices"`
}

// TransferHistoryItem is one consolidation run in the history listing.
type TransferHistoryItem struct {
	ID               string  `json:"id"`
	Destination      string  `json:"destination"`
	Status           string  `json:"status"`
	TotalValueUSD    float64 `json:"total_value_usd"`
	TransferredCount int     `json:"transferred_count"`
	Signature        *string `json:"signature,omitempty"`
	CreatedAt        string  `json:"created_at"`
	CompletedAt      *string `json:"completed_at,omitempty"`
}

// ToConsolidationResponse maps a domain result onto the wire shape.
func ToConsolidationResponse(r *domain.ConsolidationResult) TransferResponse {
	return TransferResponse{
		Success:          r.Success,
		Signature:        r.Signature,
		TotalValueUSD:    r.TotalValueUSD,
		TransferredCount: r.TransferredCount,
		Message:          r.Message,
		Error:            r.ErrorMessage,
	}
}
