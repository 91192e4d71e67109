// SPDX-License-Identifier: MIT

package harmonics

// S1 returns the harmonic sum S_1(N) = ψ(N+1) + γ_E.
func S1(n complex128) complex128 { return Digamma(n+1) + EulerGamma }

// S2 returns S_2(N) = ζ₂ - ψ'(N+1).
func S2(n complex128) complex128 { return Zeta2 - Polygamma(1, n+1) }

// S3 returns S_3(N) = ζ₃ + ψ''(N+1)/2.
func S3(n complex128) complex128 { return Zeta3 + Polygamma(2, n+1)/2 }

// S4 returns S_4(N) = ζ₄ - ψ'''(N+1)/6.
func S4(n complex128) complex128 { return Zeta4 - Polygamma(3, n+1)/6 }

// G3 returns the Mellin transform of Li₂(x)/(1+x):
//
//	g3(N) = Σ_j c_j (ζ₂ - S1(N+j)/(N+j)) / (N+j)
//
// with the seven-term coefficient set c_j.
func G3(n complex128) complex128 {
	var r complex128
	for j, c := range g3Coefficients {
		nj := n + complex(float64(j), 0)
		r += complex(c, 0) * (Zeta2 - S1(nj)/nj) / nj
	}

	return r
}

// BetaHalf returns β(N) = ½[ψ((N+1)/2) - ψ(N/2)], the Mellin transform of
// 1/(1+x).
func BetaHalf(n complex128) complex128 {
	return (Digamma((n+1)/2) - Digamma(n/2)) / 2
}

// Sums is the set S1..S4 at one N.
type Sums struct {
	N              complex128
	S1, S2, S3, S4 complex128
}

// NewSums evaluates S1..S4 at n.
func NewSums(n complex128) Sums {
	return Sums{N: n, S1: S1(n), S2: S2(n), S3: S3(n), S4: S4(n)}
}

// Shift returns the sums at N+k for integer k ≥ 0 using
// S_i(N+1) = S_i(N) + 1/(N+1)^i, which avoids new polygamma calls.
func (s Sums) Shift(k int) Sums {
	out := s
	for i := 1; i <= k; i++ {
		m := s.N + complex(float64(i), 0)
		inv := 1 / m
		out.S1 += inv
		out.S2 += inv * inv
		out.S3 += inv * inv * inv
		out.S4 += inv * inv * inv * inv
	}
	out.N = s.N + complex(float64(k), 0)

	return out
}
