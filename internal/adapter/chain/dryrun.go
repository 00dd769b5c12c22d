package chain

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"

	"github.com/rs/zerolog"
)

// DryRunBroadcaster implements ports.Broadcaster without touching the chain.
// Every accepted instruction gets a synthetic signature; no transaction is
// ever signed or submitted.
type DryRunBroadcaster struct {
	log zerolog.Logger
}

// NewDryRunBroadcaster creates a new DryRunBroadcaster.
func NewDryRunBroadcaster(log zerolog.Logger) *DryRunBroadcaster {
	return &DryRunBroadcaster{log: log}
}

// SubmitTransfer validates the instruction and returns a synthetic signature.
func (b *DryRunBroadcaster) SubmitTransfer(ctx context.Context, ix ports.TransferInstruction) (string, error) {
	if ix.Amount <= 0 {
		return "", apperror.ErrBroadcastRejected(fmt.Errorf("non-positive amount %f for %s", ix.Amount, ix.AssetID))
	}
	if ix.From == "" || ix.To == "" {
		return "", apperror.ErrBroadcastRejected(fmt.Errorf("incomplete instruction for %s", ix.AssetID))
	}

	sig, err := syntheticSignature()
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("generate signature: %w", err))
	}

	b.log.Info().
		Str("asset", ix.AssetID).
		Str("from", ix.From).
		Str("to", ix.To).
		Float64("amount", ix.Amount).
		Str("signature", sig).
		Msg("dry-run transfer accepted")

	return sig, nil
}

func syntheticSignature() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return "dryrun_" + hex.EncodeToString(bytes), nil
}
