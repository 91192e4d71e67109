// SPDX-License-Identifier: MIT

package qcd

// UpFlavors returns the number of active up-type quarks (u, c, t) among the
// first nf flavours ordered d, u, s, c, b, t.
func UpFlavors(nf int) int { return nf / 2 }

// DownFlavors returns nf - UpFlavors(nf).
func DownFlavors(nf int) int { return nf - UpFlavors(nf) }

// IsUpType reports whether quark pid (1..6) is up-type.
func IsUpType(pid int) bool { return pid%2 == 0 }

// Charge2 returns e_q² for quark pid 1..6.
func Charge2(pid int) float64 {
	if IsUpType(pid) {
		return EU2
	}

	return ED2
}

// ChargeCombinations are the charge weights of the QED singlet and valence
// blocks in the (Σ, Σ_Δ) basis with Σ_Δ = (n_d/n_u)Σ_u - Σ_d.
type ChargeCombinations struct {
	E2Sum   float64 // Σ_q e_q² over active flavours
	E2Avg   float64 // E2Sum / nf
	VUE2M   float64 // n_u/nf (e_u² - e_d²)
	VDE2M   float64 // n_d/nf (e_u² - e_d²)
	E2Delta float64 // (n_d e_u² + n_u e_d²)/nf
}

// Charges returns the charge combinations for nf active flavours.
func Charges(nf int) ChargeCombinations {
	nu := float64(UpFlavors(nf))
	nd := float64(DownFlavors(nf))
	f := float64(nf)
	sum := nu*EU2 + nd*ED2

	return ChargeCombinations{
		E2Sum:   sum,
		E2Avg:   sum / f,
		VUE2M:   nu / f * (EU2 - ED2),
		VDE2M:   nd / f * (EU2 - ED2),
		E2Delta: (nd*EU2 + nu*ED2) / f,
	}
}
