package cgxml

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/options"
)

// DefaultMaxDepth bounds the nesting of curve vectors, sweeps and lists.
const DefaultMaxDepth = 64

// WriterConfig holds the settings applied by WriterOption values.
type WriterConfig struct {
	textualizeXYData   bool
	compactCurveVector bool
	preferCGSweeps     bool
	preferCompact      bool
	extended           *ExtendedData
	maxDepth           int
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*WriterConfig]

func newWriterConfig() *WriterConfig {
	return &WriterConfig{
		textualizeXYData: true,
		preferCGSweeps:   true,
		preferCompact:    true,
		maxDepth:         DefaultMaxDepth,
	}
}

// WithTextualizeXYData selects comma-joined text (true, the default) or
// blocked double arrays (false) for points and vectors.
func WithTextualizeXYData(enabled bool) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.textualizeXYData = enabled
	})
}

// WithCompactCurveVectors writes parity regions as SurfacePatch elements
// instead of ParityRegion/ListOfLoop. Disabled by default.
func WithCompactCurveVectors(enabled bool) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.compactCurveVector = enabled
	})
}

// WithPreferCGSweeps writes recognizable solids as named shapes. Enabled by
// default.
func WithPreferCGSweeps(enabled bool) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.preferCGSweeps = enabled
	})
}

// WithPreferMostCompactPrimitives writes single-member loops as disks and
// polygons where possible. Enabled by default.
func WithPreferMostCompactPrimitives(enabled bool) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.preferCompact = enabled
	})
}

// WithExtendedData attaches a registry of per-primitive metadata.
func WithExtendedData(data *ExtendedData) WriterOption {
	return options.NoError(func(c *WriterConfig) {
		c.extended = data
	})
}

// WithMaxDepth sets the deepest nesting level the writer follows.
func WithMaxDepth(depth int) WriterOption {
	return options.New(func(c *WriterConfig) error {
		if depth <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, depth)
		}
		c.maxDepth = depth

		return nil
	})
}

// ExtendedEntry is one key/typeCode/value triple.
type ExtendedEntry struct {
	Key      string
	TypeCode string
	Value    string
}

// ExtendedData maps curve primitives, by identity, to metadata entries.
// It is safe for concurrent use.
type ExtendedData struct {
	entries *xsync.Map[geometry.CurvePrimitive, []ExtendedEntry]
}

// NewExtendedData creates an empty registry.
func NewExtendedData() *ExtendedData {
	return &ExtendedData{entries: xsync.NewMap[geometry.CurvePrimitive, []ExtendedEntry]()}
}

// Set replaces the entries attached to c. An empty entry list removes c.
func (d *ExtendedData) Set(c geometry.CurvePrimitive, entries ...ExtendedEntry) {
	if len(entries) == 0 {
		d.entries.Delete(c)
		return
	}
	d.entries.Store(c, append([]ExtendedEntry(nil), entries...))
}

// Get returns the entries attached to c.
func (d *ExtendedData) Get(c geometry.CurvePrimitive) ([]ExtendedEntry, bool) {
	if d == nil {
		return nil, false
	}

	return d.entries.Load(c)
}

// Delete removes c from the registry.
func (d *ExtendedData) Delete(c geometry.CurvePrimitive) {
	d.entries.Delete(c)
}

// Len returns the number of primitives with entries.
func (d *ExtendedData) Len() int {
	return d.entries.Size()
}
