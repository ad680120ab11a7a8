package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("WOPR.W1"), ID("WOPR.W1"))
	require.Equal(t, ID("WOPR.W1"), ID("WOPR.W1"))
	require.NotEqual(t, ID("WOPR.W1"), ID("WOPR.W2"))
	require.NotEqual(t, ID(""), ID(" "))
}
