package domain

import "time"

// AuditEventKind identifies a lifecycle milestone reported to the
// notification channel.
type AuditEventKind string

const (
	AuditWalletConnected   AuditEventKind = "WALLET_CONNECTED"
	AuditTransferStarted   AuditEventKind = "TRANSFER_STARTED"
	AuditTransferCompleted AuditEventKind = "TRANSFER_COMPLETED"
	AuditTransferFailed    AuditEventKind = "TRANSFER_FAILED"
	AuditTransferError     AuditEventKind = "TRANSFER_ERROR"
)

// Severity colors, one per event kind (RGB).
const (
	ColorGreen  = 0x00FF00
	ColorYellow = 0xFFFF00
	ColorRed    = 0xFF0000
	ColorBlue   = 0x0000FF
)

// Color returns the severity color associated with the event kind.
func (k AuditEventKind) Color() int {
	switch k {
	case AuditWalletConnected, AuditTransferCompleted:
		return ColorGreen
	case AuditTransferStarted:
		return ColorYellow
	case AuditTransferFailed, AuditTransferError:
		return ColorRed
	default:
		return ColorBlue
	}
}

// AuditEvent describes one lifecycle milestone. Write-once, fire-and-forget;
// the core never retries delivery and never blocks on it.
type AuditEvent struct {
	Kind        AuditEventKind `json:"kind"`
	PublicKey   string         `json:"public_key,omitempty"`
	SessionID   string         `json:"session_id,omitempty"`
	ClientInfo  string         `json:"client_info,omitempty"`
	Destination string         `json:"destination,omitempty"`
	Signature   string         `json:"signature,omitempty"`
	TotalValue  float64        `json:"total_value,omitempty"`
	Error       string         `json:"error,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Terminal reports whether the event ends a transfer-all invocation.
func (e *AuditEvent) Terminal() bool {
	switch e.Kind {
	case AuditTransferCompleted, AuditTransferFailed, AuditTransferError:
		return true
	}
	return false
}
