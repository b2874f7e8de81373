package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"token": map[string]any{
			"secret": "x",
		},
	}

	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
	assert.Equal(t, "postgres.maxOpenConns", canonicalizeEnvKey("POSTGRES_MAXOPENCONNS", existing))
	assert.Equal(t, "token.secret", canonicalizeEnvKey("TOKEN_SECRET", existing))
}

func TestCanonicalizeEnvKey_UnknownSegmentsFallThroughLowercased(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{},
	}

	assert.Equal(t, "postgres.newfield", canonicalizeEnvKey("POSTGRES_NEWFIELD", existing))
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}

func TestNormalizeToken_StripsSeparators(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxopenconns", normalizeToken("max-open-conns"))
}
