package service

import "github.com/google/uuid"

// OneTimeTokenService mints and inspects the opaque single-use tokens stored
// on a user record. The token lifecycle itself (issue, verify, revoke) is a
// use case concern; this service only produces the value and recovers its
// claims so the delivery layer can hand both to the lifecycle manager.
type OneTimeTokenService interface {
	// Mint produces a fresh opaque token bound to the user together with its
	// expiry as a unix timestamp in seconds.
	Mint(userID uuid.UUID) (token string, expiresAt int64, err error)

	// Inspect recovers the bound user and expiry from a minted token.
	// The error reports a malformed or tampered token; expiry itself is
	// checked lazily at verification time, not here.
	Inspect(token string) (userID uuid.UUID, expiresAt int64, err error)
}
