package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModelTypeString(t *testing.T) {
	for mt, name := range modelTypeNames {
		require.Equal(t, name, mt.String())
		require.Equal(t, mt, ModelTypeFromString(name))
	}

	require.Equal(t, ModelTypePower, ModelTypeFromString("POWER"))
	require.Equal(t, ModelType(-1), ModelTypeFromString("cubic"))
	require.Equal(t, "unknown", ModelType(42).String())
}

func TestModelEstimate(t *testing.T) {
	tests := []struct {
		model ModelType
		a, b  float64
		epp   float64
		want  float64
	}{
		{ModelTypeHyperbolic, 10, 50, 100, 10.5},
		{ModelTypeLogarithmic, 10, 2, math.E, 12},
		{ModelTypePower, 3, 2, 4, 48},
		{ModelTypeLinear, 1, 0.5, 10, 6},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			m, err := NewModel(tt.model, tt.a, tt.b)
			require.NoError(t, err)
			require.InDelta(t, tt.want, m.Estimate(tt.epp), 1e-9)
			require.True(t, math.IsInf(m.Estimate(0), 1))
			require.True(t, math.IsInf(m.Estimate(-1), 1))
			require.NotEmpty(t, m.Formula)
		})
	}
}

func TestNewModel_Errors(t *testing.T) {
	_, err := NewModel(ModelType(-1), 1, 2)
	require.Error(t, err)

	_, err = NewModel(ModelTypeHyperbolic, 1)
	require.Error(t, err)

	_, err = NewModel(ModelTypePower, 1, 2, 3)
	require.Error(t, err)
}

func TestPerformRegression_RecoversModels(t *testing.T) {
	x := []float64{1, 2, 5, 10, 20, 50, 100}

	tests := []struct {
		model ModelType
		a, b  float64
	}{
		{ModelTypeHyperbolic, 80, 40},
		{ModelTypeLogarithmic, 200, -12},
		{ModelTypePower, 150, -0.3},
		{ModelTypeLinear, 5, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			src, err := NewModel(tt.model, tt.a, tt.b)
			require.NoError(t, err)

			y := make([]float64, len(x))
			for i := range x {
				y[i] = src.Estimate(x[i])
			}

			result, err := performRegression(x, y)
			require.NoError(t, err)
			require.Equal(t, tt.model, result.BestFit.Type)
			require.InDelta(t, 1.0, result.BestFit.RSquared, 1e-9)
			require.InDelta(t, 0, result.BestFit.RMSE, 1e-9)
			require.InDeltaSlice(t, []float64{tt.a, tt.b}, result.BestFit.Coefficients, 1e-6)
		})
	}
}

func TestPerformRegression_Errors(t *testing.T) {
	_, err := performRegression([]float64{1, 2}, []float64{1})
	require.Error(t, err)

	_, err = performRegression([]float64{1}, []float64{1})
	require.Error(t, err)

	// Identical x values leave every line fit undefined.
	_, err = performRegression([]float64{4, 4, 4}, []float64{1, 2, 3})
	require.Error(t, err)
}

func TestStatistics(t *testing.T) {
	observed := []float64{1, 2, 3, 4}
	require.InDelta(t, 1.0, calculateRSquared(observed, observed), 1e-12)
	require.InDelta(t, 0.0, calculateRMSE(observed, observed), 1e-12)

	predicted := []float64{2, 3, 4, 5}
	require.InDelta(t, 1.0, calculateRMSE(observed, predicted), 1e-12)
	require.InDelta(t, 0.2, calculateRSquared(observed, predicted), 1e-12)

	require.Zero(t, calculateRSquared(nil, nil))
	require.Zero(t, calculateRSquared([]float64{3, 3}, []float64{1, 2}))
	require.Zero(t, calculateRMSE(nil, nil))
}

func TestResult(t *testing.T) {
	var empty Result
	require.Equal(t, "Result{BestFit: nil}", empty.String())
	require.Zero(t, empty.EstimatePackSize(10))

	m, err := NewModel(ModelTypeHyperbolic, 100, 34)
	require.NoError(t, err)
	r := Result{BestFit: m, AllModels: []*Model{m}}
	require.InDelta(t, 1034.0, r.EstimatePackSize(10), 1e-9)
	require.Zero(t, r.EstimatePackSize(0))
	require.Contains(t, r.String(), "hyperbolic")
}
