// SPDX-License-Identifier: MIT

package anomalous

import (
	"fmt"

	"github.com/katalvlaran/eko/cmplxmat"
	"github.com/katalvlaran/eko/harmonics"
	"github.com/katalvlaran/eko/qcd"
)

func checkFlavors(nf int) error {
	if nf < qcd.MinFlavors || nf > qcd.MaxFlavors {
		return fmt.Errorf("nf=%d: %w", nf, ErrFlavors)
	}

	return nil
}

// nonSingletQCD returns γ_0 … γ_{order-1} of a QCD non-singlet sector;
// kind is NSPlus, NSMinus or NSValence.
func nonSingletQCD(kind Sector, n complex128, nf, order int) []complex128 {
	out := make([]complex128, 0, order)
	out = append(out, nsLO(n, harmonics.S1(n)))
	if order >= 2 {
		sign := -1
		if kind == NSPlus {
			sign = +1
		}
		out = append(out, nsNLO(newNLOSums(n), nf, sign))
	}
	if order >= 3 {
		s := newNNLOSums(n)
		switch kind {
		case NSPlus:
			out = append(out, -pNSPlus(s, nf))
		case NSMinus:
			out = append(out, -pNSMinus(s, nf))
		default:
			out = append(out, -pNSValence(s, nf))
		}
	}

	return out
}

// NonSinglet returns the anomalous dimensions of a scalar sector at N.
//
// QED sectors NSPlusU/D and NSMinusU/D carry the QCD plus or minus
// kernels and the O(a_em), O(a_s a_em) kernels weighted by e_u² or e_d².
func NonSinglet(sector Sector, n complex128, nf int, o Orders) (Scalar, error) {
	if err := o.validate(); err != nil {
		return Scalar{}, fmt.Errorf("NonSinglet: %w", err)
	}
	if err := checkFlavors(nf); err != nil {
		return Scalar{}, fmt.Errorf("NonSinglet: %w", err)
	}
	if sector.IsMatrix() || (sector.IsQED() && o.QED == 0) {
		return Scalar{}, fmt.Errorf("NonSinglet: %v: %w", sector, ErrSector)
	}

	switch sector {
	case NSPlus, NSMinus, NSValence:
		return Scalar{QCD: nonSingletQCD(sector, n, nf, o.QCD)}, nil
	}

	plus := sector == NSPlusU || sector == NSPlusD
	e2 := qcd.ED2
	if sector == NSPlusU || sector == NSMinusU {
		e2 = qcd.EU2
	}
	kind := NSMinus
	if plus {
		kind = NSPlus
	}
	out := Scalar{
		QCD: nonSingletQCD(kind, n, nf, o.QCD),
		EM:  complex(e2, 0) * nsEM(n, harmonics.S1(n)),
	}
	if o.Mixed() {
		ms := newMixedSums(n)
		if plus {
			out.Mixed = complex(e2, 0) * nsPlusMixed(ms)
		} else {
			out.Mixed = complex(e2, 0) * nsMinusMixed(ms)
		}
	}

	return out, nil
}

// singletQCD returns γ_0 … γ_{order-1} as 2×2 matrices in (Σ, g).
func singletQCD(n complex128, nf, order int) [][2][2]complex128 {
	out := [][2][2]complex128{SingletLO(n, nf)}
	if order >= 2 {
		out = append(out, singletNLO(newNLOSums(n), nf))
	}
	if order >= 3 {
		out = append(out, singletNNLO(newNNLOSums(n), nf))
	}

	return out
}

// Block returns the anomalous dimensions of a matrix sector at N:
// Singlet (Σ, g), SingletQED (g, γ, Σ, Σ_Δ) or ValenceQED (V, V_Δ).
func Block(sector Sector, n complex128, nf int, o Orders) (Matrix, error) {
	if err := o.validate(); err != nil {
		return Matrix{}, fmt.Errorf("Block: %w", err)
	}
	if err := checkFlavors(nf); err != nil {
		return Matrix{}, fmt.Errorf("Block: %w", err)
	}
	if !sector.IsMatrix() || (sector.IsQED() && o.QED == 0) {
		return Matrix{}, fmt.Errorf("Block: %v: %w", sector, ErrSector)
	}

	switch sector {
	case Singlet:
		var out Matrix
		for _, g := range singletQCD(n, nf, o.QCD) {
			out.QCD = append(out.QCD, cmplxmat.FromRows([][]complex128{g[0][:], g[1][:]}))
		}

		return out, nil
	case SingletQED:
		return singletQED(n, nf, o), nil
	}

	return valenceQED(n, nf, o), nil
}

// singletQED assembles the 4×4 block in (g, γ, Σ, Σ_Δ).
func singletQED(n complex128, nf int, o Orders) Matrix {
	var out Matrix
	plus := nonSingletQCD(NSPlus, n, nf, o.QCD)
	for k, g := range singletQCD(n, nf, o.QCD) {
		qq, qg, gq, gg := g[0][0], g[0][1], g[1][0], g[1][1]
		out.QCD = append(out.QCD, cmplxmat.FromRows([][]complex128{
			{gg, 0, gq, 0},
			{0, 0, 0, 0},
			{qg, 0, qq, 0},
			{0, 0, 0, plus[k]},
		}))
	}

	c := qcd.Charges(nf)
	avg, vu, vd, delta := complex(c.E2Avg, 0), complex(c.VUE2M, 0), complex(c.VDE2M, 0), complex(c.E2Delta, 0)
	ns, phq, qph := nsEM(n, harmonics.S1(n)), phqEM(n), qphEM(n, nf)
	out.EM = cmplxmat.FromRows([][]complex128{
		{0, 0, 0, 0},
		{0, phphEM(nf), avg * phq, vu * phq},
		{0, avg * qph, avg * ns, vu * ns},
		{0, vd * qph, vd * ns, delta * ns},
	})

	if o.Mixed() {
		ms := newMixedSums(n)
		sum := complex(c.E2Sum, 0)
		f2 := 2 * cf(nf)
		phqM, qphM, qgM, nsM := phqMixed(ms), qphMixed(ms), qgMixed(ms), nsPlusMixed(ms)
		out.Mixed = cmplxmat.FromRows([][]complex128{
			{4 * qcd.TR * sum, sum * gphMixed(n), avg * phqM, vu * phqM},
			{sum * phgMixed(n), 4 * qcd.CF * qcd.CA * sum, avg * phqM, vu * phqM},
			{avg * f2 * qgM, avg * f2 * qphM, avg * nsM, vu * nsM},
			{vd * f2 * qgM, vd * f2 * qphM, vd * nsM, delta * nsM},
		})
	}

	return out
}

// valenceQED assembles the 2×2 block in (V, V_Δ).
func valenceQED(n complex128, nf int, o Orders) Matrix {
	var out Matrix
	v := nonSingletQCD(NSValence, n, nf, o.QCD)
	m := nonSingletQCD(NSMinus, n, nf, o.QCD)
	for k := range v {
		out.QCD = append(out.QCD, cmplxmat.FromRows([][]complex128{{v[k], 0}, {0, m[k]}}))
	}

	c := qcd.Charges(nf)
	charges := func(g complex128) *cmplxmat.Matrix {
		return cmplxmat.FromRows([][]complex128{
			{complex(c.E2Avg, 0) * g, complex(c.VUE2M, 0) * g},
			{complex(c.VDE2M, 0) * g, complex(c.E2Delta, 0) * g},
		})
	}
	out.EM = charges(nsEM(n, harmonics.S1(n)))
	if o.Mixed() {
		out.Mixed = charges(nsMinusMixed(newMixedSums(n)))
	}

	return out
}
