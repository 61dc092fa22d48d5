package dataset

import (
	"github.com/arloliu/trend/compress"
	"github.com/arloliu/trend/internal/options"
)

type config struct {
	xCompression compress.Type
	yCompression compress.Type
}

func newConfig() config {
	return config{
		xCompression: compress.TypeNone,
		yCompression: compress.TypeNone,
	}
}

// Option is a functional option for Encode.
type Option = options.Option[*config]

var applyOptions = options.Apply[*config]

// WithCompression sets the same compression type for both columns.
func WithCompression(t compress.Type) Option {
	return options.NoError(func(cfg *config) {
		cfg.xCompression = t
		cfg.yCompression = t
	})
}

// WithXCompression sets the compression type for the x column.
func WithXCompression(t compress.Type) Option {
	return options.NoError(func(cfg *config) {
		cfg.xCompression = t
	})
}

// WithYCompression sets the compression type for the y column.
func WithYCompression(t compress.Type) Option {
	return options.NoError(func(cfg *config) {
		cfg.yCompression = t
	})
}
