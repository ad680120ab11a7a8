package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestEngineByteOrder(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	buf := make([]byte, 4)
	le.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint32(0x01020304), le.Uint32(buf))

	be.PutUint32(buf, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), be.Uint32(buf))
}

func TestEngineAppend(t *testing.T) {
	le := GetLittleEndianEngine()

	buf := le.AppendUint64(nil, 0x0102030405060708)
	require.Len(t, buf, 8)
	require.Equal(t, uint64(0x0102030405060708), le.Uint64(buf))
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.True(t, order == binary.LittleEndian || order == binary.BigEndian)

	// Exactly one of the two predicates holds, and it matches the order.
	require.NotEqual(t, IsNativeLittleEndian(), IsNativeBigEndian())
	if IsNativeLittleEndian() {
		require.Equal(t, binary.LittleEndian, order)
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.Equal(t, binary.BigEndian, order)
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}
