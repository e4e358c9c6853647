package regression

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// transform maps one model onto a straight line fit. coeffs turns the fitted
// intercept and slope back into the model coefficients.
type transform struct {
	model  ModelType
	x      func(float64) float64
	y      func(float64) float64
	coeffs func(alpha, beta float64) (a, b float64)
}

func identity(v float64) float64 { return v }

func inverse(v float64) float64 { return 1 / v }

func linearCoeffs(alpha, beta float64) (float64, float64) { return alpha, beta }

var transforms = []transform{
	{model: ModelTypeHyperbolic, x: inverse, y: identity, coeffs: linearCoeffs},
	{model: ModelTypeLogarithmic, x: math.Log, y: identity, coeffs: linearCoeffs},
	{model: ModelTypePower, x: math.Log, y: math.Log, coeffs: func(alpha, beta float64) (float64, float64) {
		return math.Exp(alpha), beta
	}},
	{model: ModelTypeLinear, x: identity, y: identity, coeffs: linearCoeffs},
}

// performRegression fits every model to the (EPP, BPE) points and ranks them by R².
func performRegression(eppValues, bpeValues []float64) (*Result, error) {
	if len(eppValues) != len(bpeValues) {
		return nil, fmt.Errorf("mismatched data lengths: %d EPP vs %d BPE", len(eppValues), len(bpeValues))
	}

	if len(eppValues) < 2 {
		return nil, fmt.Errorf("insufficient data points for regression: %d", len(eppValues))
	}

	models := make([]*Model, 0, len(transforms))
	for _, tr := range transforms {
		if m, ok := fit(tr, eppValues, bpeValues); ok {
			models = append(models, m)
		}
	}

	if len(models) == 0 {
		return nil, errors.New("no model could be fitted to the data points")
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		return cmp.Compare(b.RSquared, a.RSquared)
	})

	return &Result{BestFit: models[0], AllModels: models}, nil
}

// fit reports false when the transformed data is degenerate.
func fit(tr transform, x, y []float64) (*Model, bool) {
	tx := make([]float64, len(x))
	ty := make([]float64, len(y))
	for i := range x {
		tx[i] = tr.x(x[i])
		ty[i] = tr.y(y[i])
		if !isFinite(tx[i]) || !isFinite(ty[i]) {
			return nil, false
		}
	}

	alpha, beta := stat.LinearRegression(tx, ty, nil, false)
	a, b := tr.coeffs(alpha, beta)
	if !isFinite(a) || !isFinite(b) {
		return nil, false
	}

	m := &Model{
		Type:         tr.model,
		Coefficients: []float64{a, b},
		Formula:      formatFormula(tr.model, a, b),
	}

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = m.Estimate(x[i])
	}
	m.RSquared = calculateRSquared(y, predicted)
	m.RMSE = calculateRMSE(y, predicted)

	return m, true
}

// calculateRSquared returns 1 - SS_res/SS_tot on the original scale, or 0 for constant data.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := stat.Mean(observed, nil)
	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1 - ssRes/ssTot
}

func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	var sumSq float64
	for i := range observed {
		d := observed[i] - predicted[i]
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
