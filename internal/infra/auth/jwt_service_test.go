package auth

import (
	"testing"
	"time"

	"quorum/config"
	"quorum/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.OneTimeTokenService {
	t.Helper()

	svc, err := NewOneTimeTokenService(&config.Config{
		Token: &config.TokenConfig{Secret: "test-secret", TTL: ttl},
	})
	require.NoError(t, err)

	return svc
}

func TestOneTimeTokenService_RequiresSecret(t *testing.T) {
	_, err := NewOneTimeTokenService(&config.Config{})
	assert.Error(t, err)

	_, err = NewOneTimeTokenService(&config.Config{Token: &config.TokenConfig{}})
	assert.Error(t, err)
}

func TestOneTimeTokenService_MintAndInspect(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	userID := uuid.New()

	token, expiresAt, err := svc.Mint(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	gotID, gotExp, err := svc.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, expiresAt, gotExp)
}

func TestOneTimeTokenService_InspectExpiredToken(t *testing.T) {
	// The codec still parses expired tokens; expiry is the lifecycle
	// manager's call, made against the returned claim.
	svc := newTestTokenService(t, -time.Minute)
	userID := uuid.New()

	token, expiresAt, err := svc.Mint(userID)
	require.NoError(t, err)
	assert.LessOrEqual(t, expiresAt, time.Now().Unix())

	gotID, gotExp, err := svc.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, expiresAt, gotExp)
}

func TestOneTimeTokenService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)

	token, _, err := svc.Mint(uuid.New())
	require.NoError(t, err)

	otherSvc, err := NewOneTimeTokenService(&config.Config{
		Token: &config.TokenConfig{Secret: "different-secret"},
	})
	require.NoError(t, err)

	_, _, err = otherSvc.Inspect(token)
	assert.Error(t, err)

	_, _, err = svc.Inspect(token + "x")
	assert.Error(t, err)

	_, _, err = svc.Inspect("not-a-token")
	assert.Error(t, err)
}
