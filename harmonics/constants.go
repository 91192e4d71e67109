// SPDX-License-Identifier: MIT

package harmonics

// Riemann zeta values and related constants.
const (
	Zeta2      = 1.6449340668482264 // π²/6
	Zeta3      = 1.2020569031595942
	Zeta4      = 1.0823232337111381 // π⁴/90
	Zeta5      = 1.0369277551433699
	EulerGamma = 0.5772156649015329
	Ln2        = 0.6931471805599453
)

// bernoulli holds B_{2k} for k = 1..10.
var bernoulli = [...]float64{
	1.0 / 6,
	-1.0 / 30,
	1.0 / 42,
	-1.0 / 30,
	5.0 / 66,
	-691.0 / 2730,
	7.0 / 6,
	-3617.0 / 510,
	43867.0 / 798,
	-174611.0 / 330,
}

// factorial table up to 24!, enough for the polygamma asymptotics (k ≤ 4).
var factorial = func() [25]float64 {
	var f [25]float64
	f[0] = 1
	for i := 1; i < len(f); i++ {
		f[i] = f[i-1] * float64(i)
	}

	return f
}()

// g3Coefficients parametrise the Mellin transform of Li₂(x)/(1+x).
var g3Coefficients = [...]float64{1.0000, -0.9992, 0.9851, -0.9005, 0.6621, -0.3174, 0.0699}
