package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789abcdef"

func TestGenerateAndParse(t *testing.T) {
	raw, err := GenerateAccessToken(testSecret, "admin", "admin", 15*time.Minute)
	require.NoError(t, err)

	claims, err := ParseAccessToken(testSecret, raw)
	require.NoError(t, err)
	require.Equal(t, "admin", claims.Username)
	require.Equal(t, "admin", claims.Role)
	require.Equal(t, "admin", claims.Subject)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := GenerateAccessToken(testSecret, "admin", "admin", 15*time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", raw)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	raw, err := GenerateAccessToken(testSecret, "admin", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(testSecret, raw)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseAccessToken(testSecret, "not-a-jwt")
	require.Error(t, err)
}
