package regression

import (
	"testing"

	"github.com/arloliu/geomcodec/pack"
)

func BenchmarkPerformRegression(b *testing.B) {
	x := make([]float64, 0, len(standardTestPoints))
	y := make([]float64, 0, len(standardTestPoints))
	for _, epp := range standardTestPoints {
		x = append(x, float64(epp))
		y = append(y, 90+34/float64(epp))
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := performRegression(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	packs := []pack.Pack{buildParcelPack(b, 500)}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Analyze(packs); err != nil {
			b.Fatal(err)
		}
	}
}
