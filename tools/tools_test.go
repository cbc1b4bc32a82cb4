package tools

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Observer", Capitalize("observer"))
	require.Equal(t, "Strategy", Capitalize("Strategy"))
	require.Equal(t, "Éclair", Capitalize("éclair"))
	require.Equal(t, "", Capitalize(""))
}
