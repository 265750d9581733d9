package renorm_test

import (
	"fmt"

	"github.com/katalvlaran/renormlab/renorm"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleFactorize
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Extract the multiplicative generator set of N = 360 = 2³·3²·5.
//	Multiplicities are irrelevant for the renormalization lattice, so
//	each prime appears exactly once, in ascending order.
func ExampleFactorize() {
	primes, err := renorm.Factorize(360)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(primes)
	// Output:
	// [2 3 5]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluationPoints
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Map the generator set {2, 3} to evaluation points: the archimedean
//	place contributes x = 0, every prime p contributes x = log p.
func ExampleEvaluationPoints() {
	points := renorm.EvaluationPoints([]int{2, 3})
	for _, x := range points {
		fmt.Printf("%.4f\n", x)
	}
	// Output:
	// 0.0000
	// 0.6931
	// 1.0986
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildAndAnalyze
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Full pipeline for N = 30: factor, build the R×R Vandermonde-style
//	matrix over {0, log 2, log 3, log 5}, and read off the dimension.
func ExampleBuildAndAnalyze() {
	a, err := renorm.BuildAndAnalyze(30)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("primes=%v\nR=%d\n", a.Primes, a.R)
	// Output:
	// primes=[2 3 5]
	// R=4
}
