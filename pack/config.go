package pack

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/geomcodec/compress"
	"github.com/arloliu/geomcodec/fbgeom"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/internal/options"
)

// EncoderConfig holds the pack encoder settings applied by EncoderOption values.
type EncoderConfig struct {
	compression format.CompressionType
	codec       compress.Codec
	keyNames    bool
	geom        *fbgeom.Encoder
	log         logrus.FieldLogger
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		keyNames:    true,
		log:         logrus.StandardLogger(),
	}
}

// WithCompression sets the codec applied to the data section.
// The default is format.CompressionNone.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		codec, err := compress.CreateCodec(c, "data section")
		if err != nil {
			return err
		}
		cfg.compression = c
		cfg.codec = codec

		return nil
	})
}

// WithKeyNames controls whether key strings are stored in the pack.
//
// Names are stored regardless when two keys hash to the same id.
func WithKeyNames(enabled bool) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		cfg.keyNames = enabled
	})
}

// WithGeometryEncoder sets the BGFB encoder used by Add.
// By default the pack encoder creates one with default options.
func WithGeometryEncoder(enc *fbgeom.Encoder) EncoderOption {
	return options.New(func(cfg *EncoderConfig) error {
		if enc == nil {
			return fmt.Errorf("nil geometry encoder")
		}
		cfg.geom = enc

		return nil
	})
}

// WithLogger sets the logger for pack encoder diagnostics.
func WithLogger(log logrus.FieldLogger) EncoderOption {
	return options.NoError(func(cfg *EncoderConfig) {
		if log != nil {
			cfg.log = log
		}
	})
}

// DecoderConfig holds the pack decoder settings applied by DecoderOption values.
type DecoderConfig struct {
	geom *fbgeom.Decoder
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithGeometryDecoder sets the BGFB decoder used by Pack.Geometry.
func WithGeometryDecoder(dec *fbgeom.Decoder) DecoderOption {
	return options.New(func(cfg *DecoderConfig) error {
		if dec == nil {
			return fmt.Errorf("nil geometry decoder")
		}
		cfg.geom = dec

		return nil
	})
}
