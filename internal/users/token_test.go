package users

import (
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken_LengthAndAlphabet(t *testing.T) {
	raw, err := GenerateToken(DefaultTokenLength)
	require.NoError(t, err)

	// 32 random bytes encode to 43 URL-safe characters.
	require.Len(t, raw, 43)

	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err, "token must be URL-safe base64")
	require.Len(t, decoded, DefaultTokenLength)
}

func TestGenerateToken_Unique(t *testing.T) {
	a, err := GenerateToken(DefaultTokenLength)
	require.NoError(t, err)
	b, err := GenerateToken(DefaultTokenLength)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHashToken_HexDigest(t *testing.T) {
	digest := HashToken("some-raw-token")

	require.Len(t, digest, 64)
	_, err := hex.DecodeString(digest)
	require.NoError(t, err)

	require.Equal(t, digest, HashToken("some-raw-token"), "digest is deterministic")
	require.NotEqual(t, digest, HashToken("other-raw-token"))
	require.NotEqual(t, "", HashToken(""), "even the empty token has a digest")
}
