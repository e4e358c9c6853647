package regression

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arloliu/geomcodec/internal/options"
	"github.com/arloliu/geomcodec/pack"
	"github.com/arloliu/geomcodec/section"
)

// standardTestPoints are the default entries-per-pack chunk sizes.
var standardTestPoints = []int{1, 2, 5, 10, 20, 50, 100, 150, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000}

// sample is one entry to be re-packed.
type sample struct {
	key  string
	data []byte
}

// Analyze aggregates the entries of all packs and returns a single best-fit model.
//
// Example:
//
//	result, err := regression.Analyze([]pack.Pack{p1, p2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bpe := result.BestFit.Estimate(200) // bytes per entry at 200 entries per pack
func Analyze(packs []pack.Pack, opts ...AnalyzeOption) (*Result, error) {
	if len(packs) == 0 {
		return nil, errors.New("no packs provided")
	}

	cfg, err := newAnalyzeConfig(opts)
	if err != nil {
		return nil, err
	}

	return analyzeSamples(collectSamples(packs...), cfg)
}

// AnalyzeEach analyzes each pack separately and returns per-pack models.
//
// This is useful for comparing packs built from different geometry sources.
func AnalyzeEach(packs []pack.Pack, opts ...AnalyzeOption) ([]*Result, error) {
	if len(packs) == 0 {
		return nil, errors.New("no packs provided")
	}

	cfg, err := newAnalyzeConfig(opts)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(packs))
	for i, p := range packs {
		result, err := analyzeSamples(collectSamples(p), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze pack %d: %w", i, err)
		}
		results[i] = result
	}

	return results, nil
}

func newAnalyzeConfig(opts []AnalyzeOption) (AnalyzeConfig, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return AnalyzeConfig{}, err
	}

	return cfg, nil
}

func analyzeSamples(samples []sample, cfg AnalyzeConfig) (*Result, error) {
	if len(samples) == 0 {
		return nil, errors.New("no entries found in packs")
	}

	testEPPs := cfg.TestPoints
	if len(testEPPs) == 0 {
		testEPPs = calculateTestPoints(min(len(samples), section.MaxEntries))
	}

	var eppValues, bpeValues []float64
	var chunkEPPs []int
	for _, epp := range testEPPs {
		if epp > len(samples) {
			continue
		}

		totalBytes, err := measureChunks(samples, epp, cfg)
		if err != nil {
			return nil, fmt.Errorf("measure %d entries per pack: %w", epp, err)
		}

		eppValues = append(eppValues, float64(epp))
		bpeValues = append(bpeValues, float64(totalBytes)/float64(len(samples)))
		chunkEPPs = append(chunkEPPs, epp)
	}

	result, err := performRegression(eppValues, bpeValues)
	if err != nil {
		return nil, err
	}
	result.ChunkEPPs = chunkEPPs
	result.BPE = bpeValues

	return result, nil
}

// collectSamples gathers the entries of packs with keys unique across all of them.
//
// Packs without key names contribute their key ids in hex, which keeps the
// index layout identical.
func collectSamples(packs ...pack.Pack) []sample {
	var samples []sample
	seen := make(map[string]int)

	for _, p := range packs {
		for e := range p.All() {
			key := e.Key
			if key == "" {
				key = strconv.FormatUint(e.ID, 16)
			}

			if n, dup := seen[key]; dup {
				seen[key] = n + 1
				key += "#" + strconv.Itoa(n)
			} else {
				seen[key] = 1
			}

			samples = append(samples, sample{key: key, data: e.Data})
		}
	}

	return samples
}

// calculateTestPoints chooses the chunk sizes for up to maxEntries entries.
func calculateTestPoints(maxEntries int) []int {
	var out []int
	for _, p := range standardTestPoints {
		if p <= maxEntries {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		if maxEntries > 0 {
			return []int{maxEntries}
		}

		return nil
	}

	last := out[len(out)-1]
	if maxEntries > last && float64(maxEntries)/float64(last) > 1.2 {
		out = append(out, maxEntries)
	}

	return out
}

// measureChunks packs samples into consecutive packs of epp entries and
// returns the total encoded size.
func measureChunks(samples []sample, epp int, cfg AnalyzeConfig) (int, error) {
	total := 0
	for start := 0; start < len(samples); start += epp {
		end := min(start+epp, len(samples))

		enc, err := pack.NewEncoder(
			pack.WithCompression(cfg.Compression),
			pack.WithKeyNames(cfg.KeyNames),
		)
		if err != nil {
			return 0, err
		}

		for _, s := range samples[start:end] {
			if err := enc.AddEncoded(s.key, s.data); err != nil {
				return 0, err
			}
		}

		data, err := enc.Finish()
		if err != nil {
			return 0, err
		}
		total += len(data)
	}

	return total, nil
}
