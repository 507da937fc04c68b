package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePass(t *testing.T) {
	t.Parallel()

	hash, err := HashPass("admin123")
	require.NoError(t, err)
	require.NoError(t, ComparePass("admin123", hash))
	require.Error(t, ComparePass("wrong", hash))
}

func TestComparePassRejectsMalformedHash(t *testing.T) {
	t.Parallel()

	require.Error(t, ComparePass("admin123", "no-dot-separator"))
	require.Error(t, ComparePass("admin123", "!!!.!!!"))
}

func TestHashPassIsSalted(t *testing.T) {
	t.Parallel()

	h1, err := HashPass("admin123")
	require.NoError(t, err)
	h2, err := HashPass("admin123")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
