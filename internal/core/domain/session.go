package domain

import "time"

// Session is an ephemeral connection record created when a user connects a
// wallet. It is immutable after creation; expiry is enforced by the store.
type Session struct {
	Token        string    `json:"token"`
	OwnerAddress string    `json:"owner_address"`
	ConnectedAt  time.Time `json:"connected_at"`
	ClientInfo   string    `json:"client_info"`
}

// ExpiresAt returns the moment the session becomes invalid for a given TTL.
func (s *Session) ExpiresAt(ttl time.Duration) time.Time {
	return s.ConnectedAt.Add(ttl)
}

// Expired reports whether the session has outlived the given TTL.
func (s *Session) Expired(ttl time.Duration, now time.Time) bool {
	return now.After(s.ExpiresAt(ttl))
}
