package domain

import "math"

// NativeAssetID is the price-feed identifier for the chain's base currency.
const NativeAssetID = "SOL"

// Holding is a raw token balance as enumerated on chain, before valuation.
type Holding struct {
	Mint      string `json:"mint"`
	RawAmount uint64 `json:"raw_amount"` // smallest unit
	Decimals  uint8  `json:"decimals"`
}

// UIAmount converts the raw amount to whole-token units.
func (h Holding) UIAmount() float64 {
	return float64(h.RawAmount) / math.Pow10(int(h.Decimals))
}

// ScanResult is the output of a holdings scan for one owner.
type ScanResult struct {
	OwnerAddress  string    `json:"owner_address"`
	NativeBalance float64   `json:"native_balance"` // whole SOL
	Holdings      []Holding `json:"holdings"`
}

// ValuedHolding is a holding priced against the oracle.
type ValuedHolding struct {
	Holding
	UnitPrice float64 `json:"unit_price"`
	USDValue  float64 `json:"usd_value"`
}

// Valuation is the threshold-filtered, priced view of a scan result.
type Valuation struct {
	Transferable         []ValuedHolding `json:"transferable"`
	NativeTransferAmount float64         `json:"native_transfer_amount"` // SOL after fee reserve
	NativeUSDValue       float64         `json:"native_usd_value"`
	TotalValueUSD        float64         `json:"total_value_usd"`
}

// Round2 rounds a USD value to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
