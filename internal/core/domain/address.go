package domain

import "regexp"

// Solana addresses are base58-encoded 32-byte public keys, 32-44 chars.
var addressRe = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)

// ValidAddress reports whether s is a plausibly formatted wallet address.
// This is a format check only; it does not prove the account exists.
func ValidAddress(s string) bool {
	return addressRe.MatchString(s)
}
