package service

import (
	"context"
	"time"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MoverServiceImpl is the consolidation engine. One TransferAll invocation
// runs scan -> value -> transfer as a single sequence and produces exactly
// one ConsolidationResult and one terminal audit event.
type MoverServiceImpl struct {
	sessions    ports.SessionService
	scanner     ports.Scanner
	valuer      ports.Valuer
	broadcaster ports.Broadcaster
	notifier    ports.AuditNotifier
	history     ports.TransferRepository // nil disables history bookkeeping
	log         zerolog.Logger
}

// NewMoverService creates a new MoverServiceImpl.
func NewMoverService(
	sessions ports.SessionService,
	scanner ports.Scanner,
	valuer ports.Valuer,
	broadcaster ports.Broadcaster,
	notifier ports.AuditNotifier,
	history ports.TransferRepository,
	log zerolog.Logger,
) *MoverServiceImpl {
	return &MoverServiceImpl{
		sessions:    sessions,
		scanner:     scanner,
		valuer:      valuer,
		broadcaster: broadcaster,
		notifier:    notifier,
		history:     history,
		log:         log,
	}
}

// TransferAll consolidates every qualifying holding of the session's owner
// to the destination address.
//
// Input errors (unknown session, malformed destination) return before any
// chain or price query runs. Workflow failures after that point come back as
// a ConsolidationResult with Success=false and a nil error.
func (s *MoverServiceImpl) TransferAll(ctx context.Context, req ports.TransferAllRequest) (*domain.ConsolidationResult, error) {
	session, err := s.sessions.Lookup(ctx, req.SessionToken)
	if err != nil {
		return nil, err
	}
	if !domain.ValidAddress(req.Destination) {
		return nil, apperror.ErrDestinationInvalid()
	}

	s.notifier.Notify(ctx, &domain.AuditEvent{
		Kind:        domain.AuditTransferStarted,
		PublicKey:   session.OwnerAddress,
		SessionID:   session.Token,
		Destination: req.Destination,
		Timestamp:   time.Now().UTC(),
	})

	record := &domain.TransferRecord{
		ID:           uuid.New(),
		OwnerAddress: session.OwnerAddress,
		Destination:  req.Destination,
		Status:       domain.TransferStatusStarted,
		CreatedAt:    time.Now().UTC(),
	}
	if s.history != nil {
		if err := s.history.Create(ctx, record); err != nil {
			s.log.Warn().Err(err).Msg("failed to record transfer start")
		}
	}

	scan, err := s.scanner.Scan(ctx, session.OwnerAddress)
	if err != nil {
		return s.fail(ctx, session, record, domain.AuditTransferError, err), nil
	}

	valuation, err := s.valuer.Value(ctx, scan)
	if err != nil {
		return s.fail(ctx, session, record, domain.AuditTransferError, err), nil
	}

	signature, err := s.transfer(ctx, session.OwnerAddress, req.Destination, valuation)
	if err != nil {
		return s.fail(ctx, session, record, domain.AuditTransferFailed, err), nil
	}

	result := domain.NewConsolidationSuccess(signature, valuation.TotalValueUSD, len(valuation.Transferable))

	s.notifier.Notify(ctx, &domain.AuditEvent{
		Kind:        domain.AuditTransferCompleted,
		PublicKey:   session.OwnerAddress,
		SessionID:   session.Token,
		Destination: req.Destination,
		Signature:   result.Signature,
		TotalValue:  result.TotalValueUSD,
		Timestamp:   time.Now().UTC(),
	})
	s.complete(ctx, record, result)

	s.log.Info().
		Str("session_id", session.Token).
		Str("owner", session.OwnerAddress).
		Str("destination", req.Destination).
		Float64("total_value_usd", result.TotalValueUSD).
		Int("transferred", result.TransferredCount).
		Msg("consolidation completed")

	return result, nil
}

// transfer hands the native remainder and each transferable holding to the
// broadcaster. The last signature identifies the run; an empty transferable
// set is a valid zero-value outcome and yields no signature.
func (s *MoverServiceImpl) transfer(ctx context.Context, owner, destination string, v *domain.Valuation) (string, error) {
	var signature string

	if v.NativeTransferAmount > 0 {
		sig, err := s.broadcaster.SubmitTransfer(ctx, ports.TransferInstruction{
			From:    owner,
			To:      destination,
			AssetID: domain.NativeAssetID,
			Amount:  v.NativeTransferAmount,
		})
		if err != nil {
			return "", err
		}
		signature = sig
	}

	for _, h := range v.Transferable {
		sig, err := s.broadcaster.SubmitTransfer(ctx, ports.TransferInstruction{
			From:    owner,
			To:      destination,
			AssetID: h.Mint,
			Amount:  h.UIAmount(),
		})
		if err != nil {
			return "", err
		}
		signature = sig
	}

	return signature, nil
}

// fail builds the failure result and emits the single terminal audit event.
// kind distinguishes a rejected broadcast (TRANSFER_FAILED) from an
// infrastructure fault (TRANSFER_ERROR).
func (s *MoverServiceImpl) fail(ctx context.Context, session *domain.Session, record *domain.TransferRecord, kind domain.AuditEventKind, cause error) *domain.ConsolidationResult {
	result := domain.NewConsolidationFailure(cause.Error())

	s.notifier.Notify(ctx, &domain.AuditEvent{
		Kind:        kind,
		PublicKey:   session.OwnerAddress,
		SessionID:   session.Token,
		Destination: record.Destination,
		Error:       result.ErrorMessage,
		Timestamp:   time.Now().UTC(),
	})
	s.complete(ctx, record, result)

	s.log.Error().Err(cause).
		Str("session_id", session.Token).
		Str("owner", session.OwnerAddress).
		Str("kind", string(kind)).
		Msg("consolidation failed")

	return result
}

// complete finalizes the history record. Best-effort only.
func (s *MoverServiceImpl) complete(ctx context.Context, record *domain.TransferRecord, result *domain.ConsolidationResult) {
	if s.history == nil {
		return
	}

	now := time.Now().UTC()
	record.CompletedAt = &now
	record.TotalValueUSD = result.TotalValueUSD
	record.TransferredCount = result.TransferredCount
	if result.Success {
		record.Status = domain.TransferStatusSucceeded
		if result.Signature != "" {
			sig := result.Signature
			record.Signature = &sig
		}
	} else {
		record.Status = domain.TransferStatusFailed
		msg := result.ErrorMessage
		record.ErrorMessage = &msg
	}

	if err := s.history.Complete(ctx, record.ID, record); err != nil {
		s.log.Warn().Err(err).Str("record_id", record.ID.String()).Msg("failed to record transfer outcome")
	}
}
