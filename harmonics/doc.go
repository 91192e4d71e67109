// SPDX-License-Identifier: MIT

// Package harmonics evaluates harmonic sums and polygamma functions at complex
// Mellin moments N.
//
// The anomalous dimensions of the DGLAP equations are rational functions of N
// times harmonic sums S_k(N) = Σ_{j=1..N} j^{-k}. On the inversion contour N
// is complex, so every sum is evaluated through its analytic continuation:
//
//	S1(N) = ψ(N+1) + γ_E
//	Sk(N) = ζ_k + (-1)^{k-1} ψ^{(k-1)}(N+1)/(k-1)!   for k ≥ 2
//
// ψ and ψ^{(k)} are computed with the upward recurrence until Re z ≥ 10 and
// |z| ≥ 10 followed by the Bernoulli asymptotic series; the result is good to
// close to double precision anywhere away from the poles at z = 0, -1, -2, ….
//
// Beyond the plain sums the package provides the Mellin transform g3(N) of
// Li₂(x)/(1+x) (seven-term parametrisation), and Cache, which evaluates
// S1..S4 once per N for the kernels that need several of them.
package harmonics
