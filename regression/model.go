package regression

import (
	"fmt"
	"math"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeHyperbolic represents the hyperbolic model: BPE = a + b / EPP
	ModelTypeHyperbolic ModelType = iota
	// ModelTypeLogarithmic represents the logarithmic model: BPE = a + b * ln(EPP)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: BPE = a * EPP^b
	ModelTypePower
	// ModelTypeLinear represents the linear model: BPE = a + b * EPP
	ModelTypeLinear
)

var modelTypeNames = map[ModelType]string{
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeLinear:      "linear",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, ok := modelTypeNames[mt]; ok {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given name, case-insensitively.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	name = strings.ToLower(name)
	for mt, n := range modelTypeNames {
		if n == name {
			return mt
		}
	}

	return ModelType(-1)
}

// Model is a fitted size estimation formula.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients holds [a, b] of the model formula.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, at most 1).
	RSquared float64
	// RMSE is the root mean square error in bytes per entry.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
}

// NewModel rebuilds a model from stored coefficients.
//
// The returned model has no fit statistics. It returns an error for an
// unknown model type or a coefficient count other than two.
func NewModel(modelType ModelType, coeffs ...float64) (*Model, error) {
	if _, ok := modelTypeNames[modelType]; !ok {
		return nil, fmt.Errorf("unknown model type %d", modelType)
	}

	if len(coeffs) != 2 {
		return nil, fmt.Errorf("%s model expects exactly 2 coefficients, got %d", modelType, len(coeffs))
	}

	a, b := coeffs[0], coeffs[1]

	return &Model{
		Type:         modelType,
		Coefficients: []float64{a, b},
		Formula:      formatFormula(modelType, a, b),
	}, nil
}

// Estimate returns the bytes per entry predicted for epp entries per pack.
//
// Returns +Inf when epp is not positive.
func (m *Model) Estimate(epp float64) float64 {
	if epp <= 0 {
		return math.Inf(1)
	}

	a, b := m.Coefficients[0], m.Coefficients[1]
	switch m.Type {
	case ModelTypeHyperbolic:
		return a + b/epp
	case ModelTypeLogarithmic:
		return a + b*math.Log(epp)
	case ModelTypePower:
		return a * math.Pow(epp, b)
	case ModelTypeLinear:
		return a + b*epp
	default:
		return math.NaN()
	}
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

func formatFormula(mt ModelType, a, b float64) string {
	switch mt {
	case ModelTypeHyperbolic:
		return fmt.Sprintf("BPE = %.2f + %.2f / EPP", a, b)
	case ModelTypeLogarithmic:
		return fmt.Sprintf("BPE = %.2f + %.2f * ln(EPP)", a, b)
	case ModelTypePower:
		return fmt.Sprintf("BPE = %.2f * EPP^%.3f", a, b)
	case ModelTypeLinear:
		return fmt.Sprintf("BPE = %.2f + %.4f * EPP", a, b)
	default:
		return ""
	}
}

// Result is the outcome of a regression analysis.
type Result struct {
	// BestFit is the model with the highest R².
	BestFit *Model
	// AllModels contains all candidate models ranked by R² (best first).
	AllModels []*Model
	// ChunkEPPs holds the entries-per-pack chunk sizes the points were measured at.
	ChunkEPPs []int
	// BPE holds the measured bytes per entry, parallel to ChunkEPPs.
	BPE []float64
}

// EstimatePackSize returns the predicted size in bytes of a pack holding entries geometries.
func (r *Result) EstimatePackSize(entries int) float64 {
	if r.BestFit == nil || entries <= 0 {
		return 0
	}

	return r.BestFit.Estimate(float64(entries)) * float64(entries)
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}", r.BestFit, len(r.AllModels))
}
