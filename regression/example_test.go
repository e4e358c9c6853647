package regression_test

import (
	"fmt"

	"github.com/arloliu/geomcodec/regression"
)

func ExampleNewModel() {
	m, err := regression.NewModel(regression.ModelTypeFromString("Hyperbolic"), 120, 34)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.Formula)
	fmt.Printf("%.2f bytes per entry at 100 entries per pack\n", m.Estimate(100))
	// Output:
	// BPE = 120.00 + 34.00 / EPP
	// 120.34 bytes per entry at 100 entries per pack
}
