// Package config loads client settings from an optional TOML file and
// TSCODEC_* environment variables.
//
// Keys and defaults:
//
//	connection.url               iotdb://
//	connection.user              user
//	connection.password          password
//	frame.time_compression       none
//	frame.value_compression      none
//	frame.checksum               true
//	frame.max_payload_size       64MB
//	log.level                    info
//	log.format                   json
//
// Environment variables replace dots with underscores, so
// TSCODEC_FRAME_VALUE_COMPRESSION=zstd overrides frame.value_compression.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arloliu/tscodec/format"
	"github.com/arloliu/tscodec/frame"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TSCODEC"

// Config is the complete client configuration.
type Config struct {
	Connection ConnectionParams
	Frame      FrameConfig
	Log        LogConfig
}

// FrameConfig holds the frame encoder and decoder settings.
type FrameConfig struct {
	TimeCompression  format.CompressionType
	ValueCompression format.CompressionType
	Checksum         bool
	MaxPayloadSize   int
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  zerolog.Level
	Format string // json or console
}

// Load reads the configuration.
//
// The file tscodec.toml is searched in paths, or in ".", "/etc/tscodec/" and
// "$HOME/.tscodec/" when none are given. A missing file is not an error;
// defaults and environment variables apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(paths) == 0 {
		paths = []string{".", "/etc/tscodec/", "$HOME/.tscodec/"}
	}

	v.SetConfigName("tscodec")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("connection.url", URLPrefix)
	v.SetDefault("connection.user", DefaultUser)
	v.SetDefault("connection.password", DefaultPassword)

	v.SetDefault("frame.time_compression", "none")
	v.SetDefault("frame.value_compression", "none")
	v.SetDefault("frame.checksum", true)
	v.SetDefault("frame.max_payload_size", "64MB")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func fromViper(v *viper.Viper) (*Config, error) {
	conn, err := ParseURL(v.GetString("connection.url"), map[string]string{
		PropUser:     v.GetString("connection.user"),
		PropPassword: v.GetString("connection.password"),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid connection.url: %w", err)
	}

	timeComp, err := format.ParseCompressionType(v.GetString("frame.time_compression"))
	if err != nil {
		return nil, fmt.Errorf("invalid frame.time_compression: %w", err)
	}

	valueComp, err := format.ParseCompressionType(v.GetString("frame.value_compression"))
	if err != nil {
		return nil, fmt.Errorf("invalid frame.value_compression: %w", err)
	}

	maxPayloadSize, err := ParseSize(v.GetString("frame.max_payload_size"))
	if err != nil {
		return nil, fmt.Errorf("invalid frame.max_payload_size: %w", err)
	}
	if maxPayloadSize <= 0 || maxPayloadSize > int64(^uint32(0)) {
		return nil, fmt.Errorf("invalid frame.max_payload_size: %d out of range", maxPayloadSize)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("log.level")))
	if err != nil {
		return nil, fmt.Errorf("invalid log.level: %w", err)
	}

	logFormat := strings.ToLower(v.GetString("log.format"))
	if logFormat != "json" && logFormat != "console" {
		return nil, fmt.Errorf("invalid log.format %q: want json or console", logFormat)
	}

	return &Config{
		Connection: conn,
		Frame: FrameConfig{
			TimeCompression:  timeComp,
			ValueCompression: valueComp,
			Checksum:         v.GetBool("frame.checksum"),
			MaxPayloadSize:   int(maxPayloadSize), //nolint:gosec
		},
		Log: LogConfig{
			Level:  level,
			Format: logFormat,
		},
	}, nil
}

// Options converts the frame settings into frame options, with logger
// attached to every encoder and decoder built from them.
func (c FrameConfig) Options(logger zerolog.Logger) []frame.Option {
	return []frame.Option{
		frame.WithTimestampCompression(c.TimeCompression),
		frame.WithValueCompression(c.ValueCompression),
		frame.WithChecksum(c.Checksum),
		frame.WithMaxPayloadSize(c.MaxPayloadSize),
		frame.WithLogger(logger),
	}
}

// NewLogger builds a logger writing to w in the configured format.
func (c LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	if c.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(w).Level(c.Level).With().Timestamp().Logger()
}
