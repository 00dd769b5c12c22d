package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuditFanout_ForwardsAndPersists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockAuditNotifier(ctrl)
	repo := mocks.NewMockAuditRepository(ctrl)

	event := &domain.AuditEvent{
		Kind:      domain.AuditWalletConnected,
		PublicKey: testOwner,
		Timestamp: time.Now().UTC(),
	}

	persisted := make(chan *domain.AuditEvent, 1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.AuditEvent) error {
			persisted <- e
			return nil
		})
	sink.EXPECT().Notify(gomock.Any(), event)

	fanout := NewAuditFanout(sink, repo, newTestLogger())
	fanout.Notify(context.Background(), event)

	select {
	case e := <-persisted:
		assert.Equal(t, event.Kind, e.Kind)
		assert.Equal(t, event.PublicKey, e.PublicKey)
	case <-time.After(time.Second):
		t.Fatal("audit event was not persisted")
	}
}

func TestAuditFanout_RepoFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sink := mocks.NewMockAuditNotifier(ctrl)
	repo := mocks.NewMockAuditRepository(ctrl)

	attempted := make(chan struct{}, 1)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.AuditEvent) error {
			attempted <- struct{}{}
			return errors.New("db down")
		})
	sink.EXPECT().Notify(gomock.Any(), gomock.Any())

	fanout := NewAuditFanout(sink, repo, newTestLogger())
	fanout.Notify(context.Background(), &domain.AuditEvent{Kind: domain.AuditTransferStarted})

	select {
	case <-attempted:
	case <-time.After(time.Second):
		t.Fatal("audit persistence was never attempted")
	}
}

func TestAuditFanout_NilCollaborators(t *testing.T) {
	fanout := NewAuditFanout(nil, nil, newTestLogger())

	// Must not panic with delivery and persistence disabled.
	fanout.Notify(context.Background(), &domain.AuditEvent{Kind: domain.AuditTransferCompleted})
}
