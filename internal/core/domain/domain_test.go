package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHolding_UIAmount(t *testing.T) {
	tests := []struct {
		name    string
		holding Holding
		want    float64
	}{
		{"six decimals", Holding{Mint: "m1", RawAmount: 1_500_000, Decimals: 6}, 1.5},
		{"nine decimals", Holding{Mint: "m2", RawAmount: 1_000_000_000, Decimals: 9}, 1.0},
		{"zero decimals", Holding{Mint: "m3", RawAmount: 42, Decimals: 0}, 42.0},
		{"zero amount", Holding{Mint: "m4", RawAmount: 0, Decimals: 6}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.holding.UIAmount(), 1e-12)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 99.9, Round2(99.9))
	assert.Equal(t, 0.45, Round2(0.45000000001))
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.235))
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{Token: "tok", ConnectedAt: now.Add(-time.Hour)}

	assert.True(t, s.Expired(30*time.Minute, now))
	assert.False(t, s.Expired(2*time.Hour, now))
	assert.Equal(t, s.ConnectedAt.Add(time.Minute), s.ExpiresAt(time.Minute))
}

func TestAuditEventKind_Color(t *testing.T) {
	tests := []struct {
		kind AuditEventKind
		want int
	}{
		{AuditWalletConnected, ColorGreen},
		{AuditTransferStarted, ColorYellow},
		{AuditTransferCompleted, ColorGreen},
		{AuditTransferFailed, ColorRed},
		{AuditTransferError, ColorRed},
		{AuditEventKind("SOMETHING_ELSE"), ColorBlue},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Color())
		})
	}
}

func TestAuditEvent_Terminal(t *testing.T) {
	assert.False(t, (&AuditEvent{Kind: AuditWalletConnected}).Terminal())
	assert.False(t, (&AuditEvent{Kind: AuditTransferStarted}).Terminal())
	assert.True(t, (&AuditEvent{Kind: AuditTransferCompleted}).Terminal())
	assert.True(t, (&AuditEvent{Kind: AuditTransferFailed}).Terminal())
	assert.True(t, (&AuditEvent{Kind: AuditTransferError}).Terminal())
}

func TestNewConsolidationSuccess(t *testing.T) {
	res := NewConsolidationSuccess("sig123", 123.456, 3)

	assert.True(t, res.Success)
	assert.Equal(t, "sig123", res.Signature)
	assert.Equal(t, 123.46, res.TotalValueUSD)
	assert.Equal(t, 3, res.TransferredCount)
	assert.Equal(t, "Transferred 3 tokens worth $123.46", res.Message)
	assert.Empty(t, res.ErrorMessage)
}

func TestNewConsolidationFailure(t *testing.T) {
	res := NewConsolidationFailure("scan failed")

	assert.False(t, res.Success)
	assert.Empty(t, res.Signature)
	assert.Zero(t, res.TotalValueUSD)
	assert.Equal(t, "scan failed", res.ErrorMessage)
}

func TestTransferRecord_Terminal(t *testing.T) {
	assert.False(t, (&TransferRecord{Status: TransferStatusStarted}).Terminal())
	assert.True(t, (&TransferRecord{Status: TransferStatusSucceeded}).Terminal())
	assert.True(t, (&TransferRecord{Status: TransferStatusFailed}).Terminal())
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want bool
	}{
		{"valid mainnet address", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", true},
		{"valid token program id", "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", true},
		{"too short", "abc", false},
		{"empty", "", false},
		{"contains zero", "0xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", false},
		{"contains uppercase O", "OxKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAs", false},
		{"contains symbol", "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosg!sU", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAddress(tt.addr))
		})
	}
}
