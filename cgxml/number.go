package cgxml

import (
	"math"
	"strconv"
	"strings"
)

// nearZeroFactor scales a 2D point's magnitude into the threshold below which
// a coordinate is written as exactly zero.
const nearZeroFactor = 9.0e-16

// formatDouble renders v with up to 17 significant digits, the same as %.17G.
func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'G', 17, 64)
}

// joinDoubles renders vals as a comma-separated list.
func joinDoubles(vals []float64) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatDouble(v))
	}

	return sb.String()
}

// suppressNearZero clears coordinates that are negligible relative to the
// point's own magnitude.
func suppressNearZero(x, y float64) (float64, float64) {
	tol := nearZeroFactor * math.Hypot(x, y)
	if math.Abs(x) < tol {
		x = 0
	}
	if math.Abs(y) < tol {
		y = 0
	}

	return x, y
}

func degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}
