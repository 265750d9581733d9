// Command renormdemo builds the renormalization matrix for a generator
// value N, prints its analysis, and persists the result as a structured
// archive under data/.
//
// Usage:
//
//	renormdemo [N]
//
// N defaults to 11 and must be a positive integer.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/renormlab/renorm"
	"github.com/katalvlaran/renormlab/store"
)

const defaultGenerator = 11

func main() {
	n := defaultGenerator
	if len(os.Args) > 1 {
		parsed, err := strconv.Atoi(os.Args[1])
		if err != nil || parsed <= 0 {
			fmt.Fprintf(os.Stderr, "renormdemo: N must be a positive integer, got %q\n", os.Args[1])
			os.Exit(1)
		}
		n = parsed
	}

	analysis, err := renorm.BuildAndAnalyze(n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "renormdemo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("R=%d, multiplicative primes=%v\n", analysis.R, analysis.Primes)
	fmt.Printf("det(M)=%.6e,  cond_2(M)=%.3e  (Vandermonde style)\n",
		analysis.Determinant, analysis.ConditionNumber)
	fmt.Println("eigenvalues:")
	for i, ev := range analysis.Eigenvalues {
		fmt.Printf("  λ_%d = %.6f%+.6fi\n", i+1, real(ev), imag(ev))
	}

	path, err := analysis.Save(store.New(store.DefaultDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "renormdemo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved results to %s\n", path)
}
