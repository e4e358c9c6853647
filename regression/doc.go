// Package regression derives pack size estimation formulas from real packs.
//
// The analysis re-packs the entries of the input packs at a series of
// entries-per-pack (EPP) chunk sizes, measures the resulting bytes per entry
// (BPE), and fits candidate models to the (EPP, BPE) points. The fixed header
// cost of a pack is spread over its entries and compression improves with
// more entries, so BPE falls as EPP grows.
//
// # Basic Usage
//
//	result, err := regression.Analyze(packs, regression.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BestFit.Formula)
//
//	bpe := result.BestFit.Estimate(500)  // bytes per entry at 500 entries per pack
//	size := result.EstimatePackSize(500) // whole pack size in bytes
//
// # Model Types
//
//   - Hyperbolic: BPE = a + b / EPP
//   - Logarithmic: BPE = a + b * ln(EPP)
//   - Power: BPE = a * EPP^b
//   - Linear: BPE = a + b * EPP
//
// Every model is a least squares line fitted on transformed variables with
// gonum's stat package. Models are ranked by R² computed on the original
// scale; the hyperbolic model usually wins for uncompressed packs because
// their layout is exactly a fixed cost plus a per-entry cost.
//
// # Stored Formulas
//
// A fitted formula can be persisted as its type name and coefficients and
// rebuilt later:
//
//	m, err := regression.NewModel(regression.ModelTypeFromString("hyperbolic"), 120.5, 31.2)
package regression
