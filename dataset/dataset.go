// Package dataset stores point series as compact columnar frames.
//
// Callers that keep observation series around between fits (a charting
// application caching its samples, an analytics job shipping series between
// stages) need a stable byte form for []trend.Point. A frame splits the
// series into an x column and a y column of raw float64 bits, compresses
// each column independently with a codec from the compress package, and
// guards both with an xxHash64 digest.
//
// Frames are plain byte slices; this package performs no I/O.
//
//	data, err := dataset.Encode(points, dataset.WithCompression(compress.TypeZstd))
//	...
//	points, err := dataset.Decode(data)
//	fit, err := linear.Robust(points)
package dataset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/trend"
	"github.com/arloliu/trend/compress"
	"github.com/arloliu/trend/errs"
	"github.com/arloliu/trend/internal/hash"
)

// Frame layout, all fields little-endian:
//
//	[0:2)   magic 0xEC10
//	[2]     x column compression type
//	[3]     y column compression type
//	[4:8)   point count
//	[8:12)  compressed x column length
//	[12:16) compressed y column length
//	[16:24) xxHash64 of the two compressed columns, x then y
//	[24:)   compressed x column, compressed y column
const (
	magicNumber = uint16(0xEC10)
	headerSize  = 24
)

// Encode serializes the points into a columnar frame. Without options both
// columns are stored uncompressed.
//
// An empty series is valid and produces a zero-count frame.
func Encode(points []trend.Point, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	xCodec, err := compress.ForType(cfg.xCompression)
	if err != nil {
		return nil, fmt.Errorf("x column: %w", err)
	}
	yCodec, err := compress.ForType(cfg.yCompression)
	if err != nil {
		return nil, fmt.Errorf("y column: %w", err)
	}

	xColumn := make([]byte, len(points)*8)
	yColumn := make([]byte, len(points)*8)
	for i, p := range points {
		binary.LittleEndian.PutUint64(xColumn[i*8:], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(yColumn[i*8:], math.Float64bits(p.Y))
	}

	xPayload, err := xCodec.Compress(xColumn)
	if err != nil {
		return nil, fmt.Errorf("compress x column: %w", err)
	}
	yPayload, err := yCodec.Compress(yColumn)
	if err != nil {
		return nil, fmt.Errorf("compress y column: %w", err)
	}

	frame := make([]byte, headerSize+len(xPayload)+len(yPayload))
	binary.LittleEndian.PutUint16(frame[0:2], magicNumber)
	frame[2] = uint8(cfg.xCompression)
	frame[3] = uint8(cfg.yCompression)
	binary.LittleEndian.PutUint32(frame[4:8], uint32(len(points)))
	binary.LittleEndian.PutUint32(frame[8:12], uint32(len(xPayload)))
	binary.LittleEndian.PutUint32(frame[12:16], uint32(len(yPayload)))
	copy(frame[headerSize:], xPayload)
	copy(frame[headerSize+len(xPayload):], yPayload)
	binary.LittleEndian.PutUint64(frame[16:24], hash.Digest(frame[headerSize:]))

	return frame, nil
}

// Decode parses a frame back into its point series.
//
// The header, payload bounds and digest are validated before any
// decompression happens; every rejection wraps a sentinel from the errs
// package.
func Decode(data []byte) ([]trend.Point, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: frame is %d bytes, header needs %d", errs.ErrInvalidHeaderSize, len(data), headerSize)
	}
	if magic := binary.LittleEndian.Uint16(data[0:2]); magic != magicNumber {
		return nil, fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, magic)
	}

	xType := compress.Type(data[2])
	yType := compress.Type(data[3])
	count := int(binary.LittleEndian.Uint32(data[4:8]))
	xLen := int(binary.LittleEndian.Uint32(data[8:12]))
	yLen := int(binary.LittleEndian.Uint32(data[12:16]))
	digest := binary.LittleEndian.Uint64(data[16:24])

	xCodec, err := compress.ForType(xType)
	if err != nil {
		return nil, fmt.Errorf("x column: %w", err)
	}
	yCodec, err := compress.ForType(yType)
	if err != nil {
		return nil, fmt.Errorf("y column: %w", err)
	}

	if len(data) != headerSize+xLen+yLen {
		return nil, fmt.Errorf("%w: frame is %d bytes, header describes %d",
			errs.ErrInvalidPayloadSize, len(data), headerSize+xLen+yLen)
	}
	if actual := hash.Digest(data[headerSize:]); actual != digest {
		return nil, fmt.Errorf("%w: stored 0x%016x, computed 0x%016x", errs.ErrDigestMismatch, digest, actual)
	}

	xColumn, err := xCodec.Decompress(data[headerSize : headerSize+xLen])
	if err != nil {
		return nil, fmt.Errorf("decompress x column: %w", err)
	}
	yColumn, err := yCodec.Decompress(data[headerSize+xLen:])
	if err != nil {
		return nil, fmt.Errorf("decompress y column: %w", err)
	}

	if len(xColumn) != count*8 || len(yColumn) != count*8 {
		return nil, fmt.Errorf("%w: columns are %d/%d bytes for %d points",
			errs.ErrInvalidPayloadSize, len(xColumn), len(yColumn), count)
	}

	points := make([]trend.Point, count)
	for i := range points {
		points[i] = trend.Point{
			X: math.Float64frombits(binary.LittleEndian.Uint64(xColumn[i*8:])),
			Y: math.Float64frombits(binary.LittleEndian.Uint64(yColumn[i*8:])),
		}
	}

	return points, nil
}
