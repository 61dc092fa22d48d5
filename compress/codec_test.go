package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/trend/errs"
)

// samplePayload builds a column-shaped payload: raw float64 bits of a
// smooth series, the shape the dataset package feeds these codecs.
func samplePayload(n int) []byte {
	payload := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(payload[i*8:], math.Float64bits(float64(i)*0.5+3))
	}

	return payload
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := samplePayload(512)

	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodec_EmptyPayload(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodec_CompressibleDataShrinks(t *testing.T) {
	payload := samplePayload(4096)

	for _, typ := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodec_CorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	t.Run("Zstd", func(t *testing.T) {
		_, err := ZstdCodec{}.Decompress(garbage)
		require.Error(t, err)
	})

	t.Run("S2", func(t *testing.T) {
		_, err := S2Codec{}.Decompress(garbage)
		require.Error(t, err)
	})
}

func TestForType_Invalid(t *testing.T) {
	_, err := ForType(Type(0x7f))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestType_String(t *testing.T) {
	require.Equal(t, "None", TypeNone.String())
	require.Equal(t, "Zstd", TypeZstd.String())
	require.Equal(t, "S2", TypeS2.String())
	require.Equal(t, "LZ4", TypeLZ4.String())
	require.Equal(t, "Unknown", Type(0).String())
}

func TestType_Valid(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		require.True(t, typ.Valid())
	}
	require.False(t, Type(0).Valid())
	require.False(t, Type(0x7f).Valid())
}
