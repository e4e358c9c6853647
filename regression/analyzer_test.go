package regression

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/internal/geomtest"
	"github.com/arloliu/geomcodec/pack"
	"github.com/arloliu/geomcodec/section"
)

// divisorPoints all divide parcelCount, so every chunk is full.
var divisorPoints = []int{1, 2, 5, 10, 20, 50, 100, 200}

const parcelCount = 200

func buildParcelPack(tb testing.TB, count int, opts ...pack.EncoderOption) pack.Pack {
	tb.Helper()
	enc, err := pack.NewEncoder(opts...)
	require.NoError(tb, err)

	for i := range count {
		require.NoError(tb, enc.Add(fmt.Sprintf("parcel-%04d", i), geomtest.Square(float64(i))))
	}

	data, err := enc.Finish()
	require.NoError(tb, err)

	dec, err := pack.NewDecoder(data)
	require.NoError(tb, err)
	p, err := dec.Decode()
	require.NoError(tb, err)

	return p
}

func TestAnalyze_UncompressedIsHyperbolic(t *testing.T) {
	p := buildParcelPack(t, parcelCount)

	result, err := Analyze([]pack.Pack{p}, WithTestPoints(divisorPoints...))
	require.NoError(t, err)
	require.Equal(t, divisorPoints, result.ChunkEPPs)
	require.Len(t, result.BPE, len(divisorPoints))
	require.Len(t, result.AllModels, 4)
	require.Same(t, result.AllModels[0], result.BestFit)

	best := result.BestFit
	require.Equal(t, ModelTypeHyperbolic, best.Type)
	require.InDelta(t, 1.0, best.RSquared, 1e-9)
	// Header plus the key names count is the only per-pack cost.
	require.InDelta(t, float64(section.HeaderSize+2), best.Coefficients[1], 1e-6)

	for i := 1; i < len(result.AllModels); i++ {
		require.GreaterOrEqual(t, result.AllModels[i-1].RSquared, result.AllModels[i].RSquared)
	}

	// The whole pack prediction matches the real pack size.
	enc, err := pack.NewEncoder()
	require.NoError(t, err)
	for e := range p.All() {
		require.NoError(t, enc.AddEncoded(e.Key, e.Data))
	}
	data, err := enc.Finish()
	require.NoError(t, err)
	require.InDelta(t, float64(len(data)), result.EstimatePackSize(parcelCount), 1e-3)
}

func TestAnalyze_WithoutKeyNames(t *testing.T) {
	p := buildParcelPack(t, parcelCount, pack.WithKeyNames(false))
	require.False(t, p.HasKeyNames())

	result, err := Analyze([]pack.Pack{p}, WithKeyNames(false), WithTestPoints(divisorPoints...))
	require.NoError(t, err)
	require.Equal(t, ModelTypeHyperbolic, result.BestFit.Type)
	require.InDelta(t, float64(section.HeaderSize), result.BestFit.Coefficients[1], 1e-6)
}

func TestAnalyze_Compressed(t *testing.T) {
	p := buildParcelPack(t, parcelCount)

	for _, c := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			result, err := Analyze([]pack.Pack{p}, WithCompression(c))
			require.NoError(t, err)
			require.NotNil(t, result.BestFit)

			// Compression gets better with more entries per pack.
			first, last := result.BPE[0], result.BPE[len(result.BPE)-1]
			require.Less(t, last, first)

			bpe := result.BestFit.Estimate(100)
			require.False(t, math.IsNaN(bpe) || math.IsInf(bpe, 0))
			require.Positive(t, bpe)
		})
	}
}

func TestAnalyze_DefaultTestPoints(t *testing.T) {
	p := buildParcelPack(t, 30)

	result, err := Analyze([]pack.Pack{p})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 5, 10, 20, 30}, result.ChunkEPPs)
}

func TestAnalyze_MergesDuplicateKeys(t *testing.T) {
	a := buildParcelPack(t, 20)
	b := buildParcelPack(t, 20)

	samples := collectSamples(a, b)
	require.Len(t, samples, 40)

	keys := make(map[string]struct{}, len(samples))
	for _, s := range samples {
		keys[s.key] = struct{}{}
	}
	require.Len(t, keys, 40)

	result, err := Analyze([]pack.Pack{a, b}, WithTestPoints(1, 40))
	require.NoError(t, err)
	require.Equal(t, []int{1, 40}, result.ChunkEPPs)
}

func TestAnalyzeEach(t *testing.T) {
	packs := []pack.Pack{
		buildParcelPack(t, 10),
		buildParcelPack(t, 50, pack.WithCompression(format.CompressionZstd)),
	}

	results, err := AnalyzeEach(packs)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []int{1, 2, 5, 10}, results[0].ChunkEPPs)
	require.Equal(t, []int{1, 2, 5, 10, 20, 50}, results[1].ChunkEPPs)
}

func TestAnalyze_Errors(t *testing.T) {
	_, err := Analyze(nil)
	require.Error(t, err)

	_, err = AnalyzeEach(nil)
	require.Error(t, err)

	p := buildParcelPack(t, 10)

	_, err = Analyze([]pack.Pack{p}, WithCompression(format.CompressionType(0x7F)))
	require.Error(t, err)

	_, err = Analyze([]pack.Pack{p}, WithTestPoints(0))
	require.Error(t, err)

	_, err = Analyze([]pack.Pack{p}, WithTestPoints(section.MaxEntries+1))
	require.Error(t, err)

	// A single usable test point cannot be fitted.
	_, err = Analyze([]pack.Pack{p}, WithTestPoints(5, 100))
	require.Error(t, err)

	empty := buildParcelPack(t, 0)
	_, err = Analyze([]pack.Pack{empty})
	require.Error(t, err)

	_, err = AnalyzeEach([]pack.Pack{p, empty})
	require.ErrorContains(t, err, "pack 1")
}

func TestCalculateTestPoints(t *testing.T) {
	tests := []struct {
		max  int
		want []int
	}{
		{0, nil},
		{1, []int{1}},
		{3, []int{1, 2, 3}},
		{12, []int{1, 2, 5, 10}},
		{13, []int{1, 2, 5, 10, 13}},
		{200, []int{1, 2, 5, 10, 20, 50, 100, 150, 200}},
		{section.MaxEntries, append(append([]int(nil), standardTestPoints...), section.MaxEntries)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.max), func(t *testing.T) {
			require.Equal(t, tt.want, calculateTestPoints(tt.max))
		})
	}
}
