package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalIsLittleEndian(t *testing.T) {
	require.Equal(t, binary.LittleEndian, Canonical())
	require.Equal(t, Canonical(), Canonical())
}

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
}

func TestAppendWords(t *testing.T) {
	t.Run("little endian", func(t *testing.T) {
		got := AppendWords(GetLittleEndianEngine(), nil, 0x0102030405060708, 1)
		require.Equal(t, []byte{
			0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
			0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		}, got)
	})

	t.Run("big endian", func(t *testing.T) {
		got := AppendWords(binary.BigEndian, []byte{0xff}, 0x0102030405060708)
		require.Equal(t, []byte{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, got)
	})

	t.Run("no words", func(t *testing.T) {
		dst := []byte{0xaa}
		require.Equal(t, dst, AppendWords(Canonical(), dst))
	})
}
