// SPDX-License-Identifier: MIT
package mixrate_test

import (
	"fmt"

	"github.com/katalvlaran/mixrate"
	"github.com/katalvlaran/mixrate/builder"
	"github.com/katalvlaran/mixrate/markov"
	"github.com/katalvlaran/mixrate/matrix"
)

// ExampleBuildTransitionMatrix shows the smallest well-mixed chain: two
// fully connected states with a uniform target.
func ExampleBuildTransitionMatrix() {
	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	t, err := mixrate.BuildTransitionMatrix(a, []float64{0.5, 0.5}, markov.Variant2, markov.RowMajor)
	if err != nil {
		fmt.Println(err)
		return
	}
	rate, _ := mixrate.MixingRate(t)

	fmt.Print(t)
	fmt.Printf("rate=%.3f\n", rate)
	// Output:
	// [0.5, 0.5]
	// [0.5, 0.5]
	// rate=0.000
}

// ExampleGenerateAdjacency draws a connected graph and checks the guarantees.
func ExampleGenerateAdjacency() {
	a, err := mixrate.GenerateAdjacency(10, false, false, true, builder.WithSeed(7))
	if err != nil {
		fmt.Println(err)
		return
	}
	connected, _ := mixrate.IsConnected(a, false)

	fmt.Println("symmetric:", mixrate.IsSymmetric(a, matrix.DefaultSymmetryTol))
	fmt.Println("connected:", connected)
	// Output:
	// symmetric: true
	// connected: true
}

// ExampleMixingRate contrasts a periodic chain with its lazy version.
func ExampleMixingRate() {
	swap, _ := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
	lazy, _ := matrix.NewFromRows([][]float64{{0.75, 0.25}, {0.25, 0.75}})

	r1, _ := mixrate.MixingRate(swap)
	r2, _ := mixrate.MixingRate(lazy)
	fmt.Printf("swap=%.2f lazy=%.2f\n", r1, r2)
	// Output:
	// swap=1.00 lazy=0.50
}
