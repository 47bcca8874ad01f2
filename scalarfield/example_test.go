// File: scalarfield/example_test.go
package scalarfield_test

import (
	"fmt"

	"github.com/katalvlaran/isomesh/scalarfield"
)

////////////////////////////////////////////////////////////////////////////////
// Example: New
////////////////////////////////////////////////////////////////////////////////

// ExampleNew builds a small analytic field and reads it back.
// Scenario:
//
//   - 3×3×3 grid over the unit cube
//   - generator f(x,y,z) = x + 10y + 100z, so every value spells out
//     which coordinates produced it
//
// Complexity: O(nx·ny·nz)
func ExampleNew() {
	f, _ := scalarfield.New(
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Analytic(func(x, y, z float64) float64 {
			return x + 10*y + 100*z
		}),
	)

	fmt.Println("points:", f.Len())
	fmt.Println("corner:", f.At(2, 2, 2))
	fmt.Println("center:", f.At(1, 1, 1))

	// Output:
	// points: 27
	// corner: 111
	// center: 55.5
}

////////////////////////////////////////////////////////////////////////////////
// Example: Field.SetStep
////////////////////////////////////////////////////////////////////////////////

// ExampleField_SetStep halves the x step; the x array is regenerated
// over its existing bounds and the whole field is resampled.
func ExampleField_SetStep() {
	f, _ := scalarfield.New(
		scalarfield.Linspace(0, 1, 3), // step 0.5
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Analytic(func(x, y, z float64) float64 {
			return x * y * z
		}),
	)
	fmt.Println("before:", f.Nx(), "samples along x")

	_ = f.SetStep(scalarfield.StepUpdate{X: scalarfield.Ptr(0.25)})
	fmt.Println("after: ", f.Nx(), "samples along x")
	fmt.Println("values:", f.Len())

	// Output:
	// before: 3 samples along x
	// after:  5 samples along x
	// values: 45
}
