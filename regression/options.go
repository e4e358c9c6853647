package regression

import (
	"fmt"

	"github.com/arloliu/geomcodec/compress"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/internal/options"
	"github.com/arloliu/geomcodec/section"
)

// AnalyzeConfig holds the pack settings used when re-packing entries.
type AnalyzeConfig struct {
	Compression format.CompressionType
	KeyNames    bool
	// TestPoints overrides the entries-per-pack chunk sizes. Sizes larger
	// than the number of available entries are skipped.
	TestPoints []int
}

// defaultAnalyzeConfig returns default config (uncompressed packs with key names).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Compression: format.CompressionNone,
		KeyNames:    true,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithCompression sets the data section compression of the measured packs.
func WithCompression(c format.CompressionType) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		cfg.Compression = c

		return nil
	})
}

// WithKeyNames controls whether the measured packs store key names.
func WithKeyNames(enabled bool) AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.KeyNames = enabled
	})
}

// WithTestPoints sets explicit entries-per-pack chunk sizes.
func WithTestPoints(epps ...int) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		for _, epp := range epps {
			if epp <= 0 || epp > section.MaxEntries {
				return fmt.Errorf("test point %d outside [1, %d]", epp, section.MaxEntries)
			}
		}
		cfg.TestPoints = append([]int(nil), epps...)

		return nil
	})
}
