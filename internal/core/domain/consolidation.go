package domain

import "fmt"

// ConsolidationResult is the terminal record of one transfer-all invocation.
// Exactly one is produced per invocation and it is never mutated afterwards.
type ConsolidationResult struct {
	Success          bool    `json:"success"`
	Signature        string  `json:"signature,omitempty"`
	TotalValueUSD    float64 `json:"total_value_usd"`
	TransferredCount int     `json:"transferred_count"`
	Message          string  `json:"message,omitempty"`
	ErrorMessage     string  `json:"error,omitempty"`
}

// NewConsolidationSuccess builds the success outcome.
func NewConsolidationSuccess(signature string, totalValue float64, count int) *ConsolidationResult {
	totalValue = Round2(totalValue)
	return &ConsolidationResult{
		Success:          true,
		Signature:        signature,
		TotalValueUSD:    totalValue,
		TransferredCount: count,
		Message:          fmt.Sprintf("Transferred %d tokens worth $%.2f", count, totalValue),
	}
}

// NewConsolidationFailure builds the failure outcome.
func NewConsolidationFailure(errMsg string) *ConsolidationResult {
	return &ConsolidationResult{
		Success:      false,
		ErrorMessage: errMsg,
	}
}
