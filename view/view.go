package view

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/renormlab/store"
)

// Viewer renders the latest archive of each known result kind to out.
type Viewer struct {
	store *store.Store
	out   io.Writer
}

// New returns a Viewer reading archives from st and writing the report to
// out (stdout in the CLI, a buffer in tests).
func New(st *store.Store, out io.Writer) *Viewer {
	return &Viewer{store: st, out: out}
}

// Render prints the full report for curveLabel: one section per result
// kind that has at least one archive on disk. Kinds run independently, so
// a missing archive skips its section; any other load failure aborts.
func (v *Viewer) Render(curveLabel string) error {
	fmt.Fprintf(v.out, "BSD Results Viewer - Curve: %s\n", curveLabel)

	if err := v.principalPart(curveLabel); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	if err := v.gapPolynomial(curveLabel); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	if err := v.bsdComponents(curveLabel); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	if err := v.renormMatrix(); err != nil {
		return fmt.Errorf("Render: %w", err)
	}

	return nil
}

// section prints a titled section header.
func (v *Viewer) section(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(v.out, "\n%s\n%s\n%s\n", rule, title, rule)
}

// principalPart renders the principal-part section for the curve.
func (v *Viewer) principalPart(curve string) error {
	data, path, err := v.store.LoadLatestRecord(fmt.Sprintf("principal_part_%s_*.json", curve))
	if errors.Is(err, store.ErrNoArchive) {
		return nil
	}
	if err != nil {
		return err
	}

	v.section(fmt.Sprintf("Principal Part Results (%s)", path))

	params := getMap(data, "parameters")
	fmt.Fprintf(v.out, "Parameters:\n")
	fmt.Fprintf(v.out, "  X = %v\n", params["X"])
	fmt.Fprintf(v.out, "  eps = %v\n", params["eps"])
	fmt.Fprintf(v.out, "  B = %v\n", params["B"])
	fmt.Fprintf(v.out, "  eta = %v\n", params["eta"])

	results := getMap(data, "results")
	fmt.Fprintf(v.out, "\nResults:\n")
	if re, im, ok := record(results["t_X_value"]); ok {
		fmt.Fprintf(v.out, "  t_X(1+eps) = %s\n", formatComplex(re, im))
	}
	fmt.Fprintf(v.out, "  log L(E,1+eps) = %.6f\n", number(results["log_L"]))
	fmt.Fprintf(v.out, "  log det_fin = %.6f\n", number(results["log_det_fin"]))

	checks := getList(data, "slope_checks")
	if len(checks) > 0 {
		fmt.Fprintf(v.out, "\nSlope checks:\n")
		for _, c := range checks {
			check, ok := c.(map[string]any)
			if !ok {
				continue
			}
			fmt.Fprintf(v.out, "  h=%.4f: slope = %.4f\n", number(check["h"]), number(check["slope"]))
		}
	}

	return nil
}

// gapPolynomial renders the gap-polynomial section for the curve.
func (v *Viewer) gapPolynomial(curve string) error {
	data, path, err := v.store.LoadLatestRecord(fmt.Sprintf("gap_poly_%s_*.json", curve))
	if errors.Is(err, store.ErrNoArchive) {
		return nil
	}
	if err != nil {
		return err
	}

	v.section(fmt.Sprintf("Gap Polynomial Results (%s)", path))

	params := getMap(data, "parameters")
	fmt.Fprintf(v.out, "Parameters:\n")
	fmt.Fprintf(v.out, "  Lmax = %v\n", params["Lmax"])
	fmt.Fprintf(v.out, "  Mmax = %v\n", params["Mmax"])
	fmt.Fprintf(v.out, "  Number of features = %d\n", len(getList(data, "features")))
	fmt.Fprintf(v.out, "  Number of newforms = %v\n", getMap(data, "curve_data")["num_newforms"])

	fmt.Fprintf(v.out, "\nSpectral gap: δ = %.6f\n", number(data["spectral_gap"]))

	pValues := getMap(data, "P_values")
	fmt.Fprintf(v.out, "P(f) = %.6f\n", number(pValues["f"]))
	keys := make([]string, 0, len(pValues))
	for key := range pValues {
		if key != "f" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys) // deterministic report order
	for _, key := range keys {
		fmt.Fprintf(v.out, "|P(%s)| = %.6f\n", key, number(pValues[key]))
	}

	return nil
}

// bsdComponents renders the BSD-components section for the curve.
func (v *Viewer) bsdComponents(curve string) error {
	data, path, err := v.store.LoadLatestRecord(fmt.Sprintf("bsd_components_%s_*.json", curve))
	if errors.Is(err, store.ErrNoArchive) {
		return nil
	}
	if err != nil {
		return err
	}

	v.section(fmt.Sprintf("BSD Components (%s)", path))

	comp := getMap(data, "bsd_components")
	fmt.Fprintf(v.out, "Curve data:\n")
	fmt.Fprintf(v.out, "  Rank = %d\n", asInt(comp["rank"]))
	fmt.Fprintf(v.out, "  Torsion = Z/%dZ\n", asInt(comp["torsion_order"]))

	fmt.Fprintf(v.out, "\nBSD components:\n")
	if comp["regulator"] != nil {
		fmt.Fprintf(v.out, "  Regulator = %.6f\n", number(comp["regulator"]))
	} else {
		fmt.Fprintf(v.out, "  Regulator = (not computed)\n")
	}
	fmt.Fprintf(v.out, "  Real period = %.6f\n", number(comp["real_period"]))
	fmt.Fprintf(v.out, "  Product of Tamagawa numbers = %d\n", asInt(comp["tamagawa_product"]))

	if gens := getList(comp, "generators"); len(gens) > 0 {
		fmt.Fprintf(v.out, "\nGenerators:\n")
		for _, g := range gens {
			gen, ok := g.(map[string]any)
			if !ok {
				continue
			}
			fmt.Fprintf(v.out, "  %v (height = %.6f)\n", gen["point"], number(gen["height"]))
		}
	}

	if lr := getMap(data, "L_series")["L_r_over_r_factorial"]; lr != nil {
		rank := asInt(comp["rank"])
		fmt.Fprintf(v.out, "\nL-series value:\n")
		fmt.Fprintf(v.out, "  L^(%d)(E,1)/%d! = %.6f\n", rank, rank, number(lr))
	}
	if block := getMap(data, "bsd_block")["value"]; block != nil {
		fmt.Fprintf(v.out, "\nBSD block (sans |Sha|, sans κ) = %.6f\n", number(block))
	}

	return nil
}

// renormMatrix renders the renormalization-matrix section. The matrix kind
// is global: it is not scoped by curve label.
func (v *Viewer) renormMatrix() error {
	arch, path, err := v.store.LoadLatestStructured("renorm_matrix_*" + store.StructuredExt)
	if errors.Is(err, store.ErrNoArchive) {
		return nil
	}
	if err != nil {
		return err
	}

	v.section(fmt.Sprintf("Renormalization Matrix (%s)", path))

	meta := arch.Metadata
	fmt.Fprintf(v.out, "N = %d\n", asInt(meta["N"]))
	fmt.Fprintf(v.out, "Dimension R = %d\n", asInt(meta["R"]))
	fmt.Fprintf(v.out, "Multiplicative primes: %s\n", formatIntList(getList(meta, "multiplicative_primes")))
	fmt.Fprintf(v.out, "Determinant = %.6e\n", number(meta["determinant"]))
	fmt.Fprintf(v.out, "Condition number = %.3e\n", number(meta["condition_number"]))

	eigenArr, err := arch.Array("eigenvalues")
	if err != nil {
		return err
	}
	eigs, err := eigenArr.Complex()
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "\nEigenvalues:\n")
	for i, ev := range eigs {
		fmt.Fprintf(v.out, "  λ_%d = %s\n", i+1, formatComplex(real(ev), imag(ev)))
	}

	return nil
}

// formatIntList renders a decoded JSON number list as "[2, 3, 5]".
func formatIntList(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", asInt(v))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
