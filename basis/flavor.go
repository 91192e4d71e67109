// SPDX-License-Identifier: MIT

package basis

// Size is the dimension of flavour and evolution space.
const Size = 14

// Particle ids of the non-quark partons.
const (
	PhotonPID = 22
	GluonPID  = 21
)

// Fixed positions in the flavour basis.
const (
	PhotonIndex = 0
	GluonIndex  = 7
)

// PIDs lists the flavour basis in order.
var PIDs = [Size]int{22, -6, -5, -4, -3, -2, -1, 21, 1, 2, 3, 4, 5, 6}

var quarkNames = [...]string{"", "d", "u", "s", "c", "b", "t"}

// Index returns the flavour-basis position of pid, or -1.
func Index(pid int) int {
	switch {
	case pid == PhotonPID:
		return PhotonIndex
	case pid == GluonPID:
		return GluonIndex
	case pid != 0 && pid >= -6 && pid <= 6:
		return GluonIndex + pid
	}

	return -1
}

// QuarkName returns the one-letter name of quark pid 1..6.
func QuarkName(pid int) string { return quarkNames[pid] }

type row [Size]float64

func unit(i int) row {
	var r row
	r[i] = 1

	return r
}

// plus returns q + q̄ for quark pid.
func plus(pid int) row {
	var r row
	r[GluonIndex+pid] = 1
	r[GluonIndex-pid] = 1

	return r
}

// minus returns q - q̄ for quark pid.
func minus(pid int) row {
	var r row
	r[GluonIndex+pid] = 1
	r[GluonIndex-pid] = -1

	return r
}

func (r row) add(o row, c float64) row {
	for i := range r {
		r[i] += c * o[i]
	}

	return r
}

// sum returns Σ f(pid) over pids.
func sum(pids []int, f func(int) row) row {
	var r row
	for _, p := range pids {
		r = r.add(f(p), 1)
	}

	return r
}

// ladder returns the k-th element of the T/V ladder over quarks:
// Σ_{i<k} f(q_i) - (k-1) f(q_k), k counted from 2.
func ladder(quarks []int, k int, f func(int) row) row {
	r := sum(quarks[:k-1], f)

	return r.add(f(quarks[k-1]), -float64(k-1))
}
