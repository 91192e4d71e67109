// SPDX-License-Identifier: MIT

package couplings

// decoupling returns c₁, c₂ of a_new = a(1 + c₁a + c₂a²) for a crossing of
// the heavy-quark wall with lnK = ln(μ²_h/m²_h), upwards (nf → nf+1) or
// downwards.
func decoupling(scheme MassScheme, lnK float64, up bool) (c1, c2 float64) {
	l := lnK
	switch {
	case up && scheme == Pole:
		return 2.0 / 3.0 * l, 14.0/3.0 + 38.0/3.0*l + 4.0/9.0*l*l
	case !up && scheme == Pole:
		return -2.0 / 3.0 * l, -14.0/3.0 - 38.0/3.0*l + 4.0/9.0*l*l
	case up && scheme == MSbar:
		return 2.0 / 3.0 * l, -22.0/9.0 + 22.0/3.0*l + 4.0/9.0*l*l
	default:
		return -2.0 / 3.0 * l, 22.0/9.0 - 22.0/3.0*l + 4.0/9.0*l*l
	}
}

// Match applies the decoupling relation truncated at order loops.
// LO is continuous across the wall.
func Match(a float64, order int, scheme MassScheme, lnK float64, up bool) float64 {
	c1, c2 := decoupling(scheme, lnK, up)
	fact := 1.0
	if order >= 2 {
		fact += c1 * a
	}
	if order >= 3 {
		fact += c2 * a * a
	}

	return a * fact
}
