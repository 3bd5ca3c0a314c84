package helper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, CheckPasswordHash(hash, "s3cret"))
	require.Error(t, CheckPasswordHash(hash, "wrong"))
}
