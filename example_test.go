package litho_test

import (
	"fmt"

	litho "github.com/openlitho/aerialsim"
)

// Example runs a single pipeline invocation end to end, from mask to
// measured critical dimension, using a blank mask so the result is
// exactly reproducible.
func Example() {
	p := litho.NewPipeline()
	result, err := p.Run(litho.NewMask(), litho.DefaultPupilParams())
	if err != nil {
		fmt.Println("pipeline error:", err)
		return
	}

	cd := litho.MeasureCD(result.Intensity, 1.0)
	fmt.Printf("printed width: %.1f nm\n", cd)
	// Output:
	// printed width: 0.0 nm
}
