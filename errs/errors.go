// Package errs defines the sentinel errors shared across the trend module.
//
// Fit rejections and frame validation failures wrap one of these sentinels
// with fmt.Errorf("%w: ...", ...), so callers match with errors.Is and still
// see the concrete counts or offsets in the message.
package errs

import "errors"

// Fit errors.
var (
	// ErrNeedMoreValues indicates the input sequence is shorter than the
	// operation's documented minimum (1 for Mean/StdDev, 2 for Correlation
	// and the fits). It is always raised before any computation happens.
	ErrNeedMoreValues = errors.New("need more values")

	// ErrAllZeros indicates a computation that would otherwise produce NaN:
	// a zero-variance axis in Correlation, or a robust fit whose usable
	// slope set is empty (for example, every point sharing one x value).
	// No public function in this module ever returns NaN; this error is
	// returned instead.
	ErrAllZeros = errors.New("input values are all zeros or degenerate")
)

// Dataset frame errors.
var (
	// ErrInvalidHeaderSize indicates the frame is shorter than its fixed header.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber indicates the frame does not start with the
	// dataset magic number.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidCompressionType indicates an unknown compression type byte.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidPayloadSize indicates a payload length field that does not
	// match the frame's actual size.
	ErrInvalidPayloadSize = errors.New("invalid payload size")

	// ErrDigestMismatch indicates the payload digest check failed.
	ErrDigestMismatch = errors.New("payload digest mismatch")
)
