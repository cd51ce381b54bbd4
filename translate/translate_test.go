package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	require.Equal(t, "plain", From("plain"))
	require.Equal(t, "length 3 != 4", From("length %d != %d", 3, 4))
	require.Equal(t, "mask 'Z'", From("mask %q", 'Z'))
}
