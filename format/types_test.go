package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingType_String(t *testing.T) {
	require.Equal(t, "Direct", TypeDirect.String())
	require.Equal(t, "Delta", TypeDelta.String())
	require.Equal(t, "Unknown", EncodingType(0).String())
	require.Equal(t, "Unknown", EncodingType(0xff).String())
}
