package fbgeom

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/internal/options"
)

// DefaultMaxDepth bounds the nesting of curve vectors, sweeps and lists.
const DefaultMaxDepth = 64

// EncoderConfig holds the encoder settings applied by EncoderOption values.
type EncoderConfig struct {
	log      logrus.FieldLogger
	maxDepth int
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

func newEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		log:      logrus.StandardLogger(),
		maxDepth: DefaultMaxDepth,
	}
}

// WithLogger sets the logger that receives dropped-child warnings.
// The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		if log != nil {
			c.log = log
		}
	})
}

// WithMaxDepth sets the deepest nesting level the encoder accepts.
func WithMaxDepth(depth int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if depth <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// DecoderConfig holds the decoder settings applied by DecoderOption values.
type DecoderConfig struct {
	log      logrus.FieldLogger
	maxDepth int
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		log:      logrus.StandardLogger(),
		maxDepth: DefaultMaxDepth,
	}
}

// WithDecodeLogger sets the logger that receives skipped-member warnings.
// The default is logrus.StandardLogger().
func WithDecodeLogger(log logrus.FieldLogger) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		if log != nil {
			c.log = log
		}
	})
}

// WithDecodeMaxDepth sets the deepest nesting level the decoder follows.
func WithDecodeMaxDepth(depth int) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if depth <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// Stats counts encoder activity. All methods are safe for concurrent use.
type Stats struct {
	encoded *xsync.Counter
	dropped *xsync.Counter
}

func newStats() *Stats {
	return &Stats{
		encoded: xsync.NewCounter(),
		dropped: xsync.NewCounter(),
	}
}

// Encoded returns the number of successful Encode calls.
func (s *Stats) Encoded() int64 {
	return s.encoded.Value()
}

// Dropped returns the number of children dropped from parent arrays.
func (s *Stats) Dropped() int64 {
	return s.dropped.Value()
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	s.encoded.Reset()
	s.dropped.Reset()
}
