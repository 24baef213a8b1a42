package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptKDF_RoundTrip(t *testing.T) {
	k := NewBcryptKDF()

	encoded, err := k.Hash("s3cret!")
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	require.True(t, k.Verify("s3cret!", encoded))
	require.False(t, k.Verify("wrong", encoded))
}

func TestBcryptKDF_SaltedOutputsDiffer(t *testing.T) {
	k := NewBcryptKDF()

	a, err := k.Hash("same-password")
	require.NoError(t, err)
	b, err := k.Hash("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b, "two hashes of the same password must differ")
	require.True(t, k.Verify("same-password", a))
	require.True(t, k.Verify("same-password", b))
}

func TestBcryptKDF_MalformedHashIsMismatch(t *testing.T) {
	k := NewBcryptKDF()

	for _, encoded := range []string{"", "garbage-not-a-hash", "$2b$zz$broken"} {
		if k.Verify("anything", encoded) {
			t.Fatalf("expected mismatch for malformed hash %q", encoded)
		}
	}
}

func TestBcryptKDF_EmptyPasswordIsHashable(t *testing.T) {
	k := NewBcryptKDF()

	encoded, err := k.Hash("")
	require.NoError(t, err)
	require.True(t, k.Verify("", encoded))
	require.False(t, k.Verify("not-empty", encoded))
}
