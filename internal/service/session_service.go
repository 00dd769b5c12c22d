package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"solana-money-mover/internal/core/domain"
	"solana-money-mover/internal/core/ports"
	"solana-money-mover/pkg/apperror"

	"github.com/rs/zerolog"
)

// SessionServiceImpl implements ports.SessionService on top of a pluggable
// session store.
type SessionServiceImpl struct {
	store    ports.SessionStore
	notifier ports.AuditNotifier
	ttl      time.Duration
	log      zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	store ports.SessionStore,
	notifier ports.AuditNotifier,
	ttl time.Duration,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		store:    store,
		notifier: notifier,
		ttl:      ttl,
		log:      log,
	}
}

// Connect registers a wallet connection and returns the new session.
// The token is the only credential gating the consolidation workflow.
func (s *SessionServiceImpl) Connect(ctx context.Context, req ports.ConnectRequest) (*domain.Session, error) {
	if req.PublicKey == "" {
		return nil, apperror.ErrMissingPublicKey()
	}

	token, err := generateToken(16)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate session token: %w", err))
	}

	session := &domain.Session{
		Token:        token,
		OwnerAddress: req.PublicKey,
		ConnectedAt:  time.Now().UTC(),
		ClientInfo:   req.ClientInfo,
	}

	if err := s.store.Put(ctx, session, s.ttl); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("store session: %w", err))
	}

	s.notifier.Notify(ctx, &domain.AuditEvent{
		Kind:       domain.AuditWalletConnected,
		PublicKey:  session.OwnerAddress,
		SessionID:  session.Token,
		ClientInfo: session.ClientInfo,
		Timestamp:  session.ConnectedAt,
	})

	s.log.Info().
		Str("session_id", session.Token).
		Str("owner", session.OwnerAddress).
		Msg("wallet connected")

	return session, nil
}

// Lookup resolves a session token, failing with SES_001 for unknown or
// expired tokens.
func (s *SessionServiceImpl) Lookup(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperror.ErrSessionInvalid()
	}

	session, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("session lookup: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrSessionInvalid()
	}
	return session, nil
}

// generateToken generates a random hex token of n bytes.
func generateToken(n int) (string, error) {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
