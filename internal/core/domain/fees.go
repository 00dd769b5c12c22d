package domain

// FeeOptions is the set of feature toggles a fee quote is computed over.
// Field names mirror the public API payload.
type FeeOptions struct {
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

// FeeQuote is the additive fee breakdown with the flat discount applied.
// final = (base + additive) * discountFactor, rounded to cents.
type FeeQuote struct {
	Base           float64 `json:"base"`
	Additive       float64 `json:"additive"`
	DiscountFactor float64 `json:"discount_factor"`
	Final          float64 `json:"final"`
}
