// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quorum/config"
	"quorum/internal/domain/service"
	"quorum/internal/errors"
)

const defaultOneTimeTokenTTL = 15 * time.Minute

// jwtOneTimeTokenService mints the single-use tokens as signed JWTs. The
// compact form is what gets stored on the user row; the exp claim supplies
// the expiry that verification compares against lazily.
type jwtOneTimeTokenService struct {
	secret string
	ttl    time.Duration
}

// NewOneTimeTokenService is the constructor for jwtOneTimeTokenService.
func NewOneTimeTokenService(cfg *config.Config) (service.OneTimeTokenService, error) {
	if cfg.Token == nil || cfg.Token.Secret == "" {
		return nil, errors.New("one-time token secret must be provided")
	}

	ttl := cfg.Token.TTL
	if ttl <= 0 {
		ttl = defaultOneTimeTokenTTL
	}

	return &jwtOneTimeTokenService{
		secret: cfg.Token.Secret,
		ttl:    ttl,
	}, nil
}

// Mint produces a signed token bound to the user with the configured TTL.
func (s *jwtOneTimeTokenService) Mint(userID uuid.UUID) (string, int64, error) {
	expiresAt := time.Now().Add(s.ttl).Unix()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": expiresAt,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", 0, errors.Wrap(err, "failed to sign one-time token")
	}

	return token, expiresAt, nil
}

// Inspect recovers the bound user id and expiry claim from a minted token.
// Expired tokens still parse here: expiry is enforced by the lifecycle
// manager at verification time, not by the codec.
func (s *jwtOneTimeTokenService) Inspect(tokenString string) (uuid.UUID, int64, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return uuid.Nil, 0, errors.Wrap(err, "failed to parse one-time token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, 0, errors.New("unexpected one-time token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, 0, errors.Wrap(err, "one-time token has no subject")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, 0, errors.Wrap(err, "one-time token subject is not a user id")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return uuid.Nil, 0, errors.New("one-time token has no expiry")
	}

	return userID, exp.Unix(), nil
}
