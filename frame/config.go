package frame

import (
	"fmt"

	"github.com/arloliu/tscodec/compress"
	"github.com/arloliu/tscodec/errs"
	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/internal/options"
	"github.com/rs/zerolog"
)

// DefaultMaxPayloadSize bounds each payload of a frame (64MiB).
const DefaultMaxPayloadSize = 64 * 1024 * 1024

// Config holds the settings shared by Encoder and Decoder.
type Config struct {
	timeCompression  format.CompressionType
	valueCompression format.CompressionType
	checksum         bool
	maxPayloadSize   int
	logger           zerolog.Logger
}

// Option configures an Encoder or a Decoder.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		timeCompression:  format.CompressionNone,
		valueCompression: format.CompressionNone,
		checksum:         true,
		maxPayloadSize:   DefaultMaxPayloadSize,
		logger:           zerolog.Nop(),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) setCompression(target string, dst *format.CompressionType, comp format.CompressionType) error {
	if !comp.Valid() {
		return fmt.Errorf("%w for %s payload: %d", errs.ErrInvalidCompression, target, uint8(comp))
	}
	*dst = comp

	return nil
}

// WithTimestampCompression sets the compression of the time payload.
// Decoders ignore it; the frame header records the compression used.
func WithTimestampCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		return c.setCompression("time", &c.timeCompression, comp)
	})
}

// WithValueCompression sets the compression of the value payload.
// Decoders ignore it; the frame header records the compression used.
func WithValueCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		return c.setCompression("value", &c.valueCompression, comp)
	})
}

// WithCompression sets the compression of both payloads.
func WithCompression(comp format.CompressionType) Option {
	return options.New(func(c *Config) error {
		if err := c.setCompression("time", &c.timeCompression, comp); err != nil {
			return err
		}

		return c.setCompression("value", &c.valueCompression, comp)
	})
}

// WithChecksum controls the trailing xxHash64 checksum. Encoders append it
// when enabled; decoders reject frames without one when enabled.
// It is enabled by default.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.checksum = enabled
	})
}

// WithMaxPayloadSize bounds the size of each payload, compressed or not.
func WithMaxPayloadSize(size int) Option {
	return options.New(func(c *Config) error {
		if size <= 0 {
			return fmt.Errorf("max payload size must be positive, got %d", size)
		}
		c.maxPayloadSize = size

		return nil
	})
}

// WithLogger sets the logger used for per-frame debug events.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(c *Config) {
		c.logger = logger
	})
}

// codecs resolves the compressors for both payloads.
func codecs(timeComp, valueComp format.CompressionType) (compress.Codec, compress.Codec, error) {
	tsCodec, err := compress.CreateCodec(timeComp, "time payload")
	if err != nil {
		return nil, nil, err
	}

	valCodec, err := compress.CreateCodec(valueComp, "value payload")
	if err != nil {
		return nil, nil, err
	}

	return tsCodec, valCodec, nil
}
