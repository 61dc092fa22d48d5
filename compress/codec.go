// Package compress provides the payload codecs the dataset frame chooses
// from when storing point-series columns.
//
// Columns are small float64 payloads (raw x or y bits), so the lineup favors
// cheap block codecs: None for already-small series, S2 and LZ4 for fast
// round trips, Zstd for the best ratio on cold series. All codecs are
// stateless values and safe for concurrent use; the zstd and lz4
// implementations pool their encoder state internally.
package compress

import (
	"fmt"

	"github.com/arloliu/trend/errs"
)

// Type identifies a payload compression algorithm in a dataset frame.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores the payload uncompressed.
	TypeZstd Type = 0x2 // TypeZstd is Zstandard compression.
	TypeS2   Type = 0x3 // TypeS2 is S2 (Snappy-compatible) compression.
	TypeLZ4  Type = 0x4 // TypeLZ4 is LZ4 block compression.
)

// String returns the name of the compression type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known compression type.
func (t Type) Valid() bool {
	switch t {
	case TypeNone, TypeZstd, TypeS2, TypeLZ4:
		return true
	default:
		return false
	}
}

// Codec compresses and decompresses one payload.
//
// Both directions allocate their result; the input slice is never modified.
// An empty input yields an empty output in both directions.
type Codec interface {
	// Compress compresses data and returns the compressed payload.
	Compress(data []byte) ([]byte, error)
	// Decompress reverses Compress. It returns an error if the payload is
	// corrupted or was produced by a different codec.
	Decompress(data []byte) ([]byte, error)
}

var codecs = map[Type]Codec{
	TypeNone: NoopCodec{},
	TypeZstd: ZstdCodec{},
	TypeS2:   S2Codec{},
	TypeLZ4:  LZ4Codec{},
}

// ForType returns the built-in codec for the given compression type.
func ForType(t Type) (Codec, error) {
	if codec, ok := codecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompressionType, uint8(t))
}
