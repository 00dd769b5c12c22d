package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"solana-money-mover/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)
	event := &domain.AuditEvent{
		Kind:       domain.AuditTransferCompleted,
		PublicKey:  "4Nd1mYvDpLJ6GVcRzGDTDPsvSN3YtDr6fkz71PZFkGvQ",
		SessionID:  "tok-abc",
		Signature:  "sig123",
		TotalValue: 109.9,
		Timestamp:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(pgxmock.AnyArg(), string(event.Kind), event.PublicKey, event.SessionID,
			event.ClientInfo, event.Destination, event.Signature,
			event.TotalValue, event.Error, event.Timestamp).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), event)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepo(mock)

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), &domain.AuditEvent{Kind: domain.AuditWalletConnected, Timestamp: time.Now()})

	assert.Error(t, err)
}
