// SPDX-License-Identifier: MIT

package couplings

import "github.com/katalvlaran/eko/ekoerr"

var (
	// ErrBadReference is returned for a non-positive or non-finite reference
	// coupling.
	ErrBadReference = ekoerr.Configuration("couplings: reference coupling must be positive and finite")

	// ErrOrder is returned for a perturbative order outside [1, MaxOrder].
	ErrOrder = ekoerr.Configuration("couplings: perturbative order out of range")

	// ErrLandau is returned when the expanded solution crosses the Landau
	// pole (1 + β₀ a₀ L ≤ 0).
	ErrLandau = ekoerr.Configuration("couplings: scale beyond the Landau pole")

	// ErrStepBudget is returned when the Runge–Kutta integrator exhausts
	// its step budget.
	ErrStepBudget = ekoerr.Convergence("couplings: Runge-Kutta step budget exhausted")
)

const (
	panicTolerance = "couplings: WithTolerance: tolerance must be in (0, 1e-3]"
	panicMaxSteps  = "couplings: WithMaxSteps: budget must be > 0"
	panicRatios    = "couplings: WithThresholdRatios: ratios must be positive"
	panicAlphaEM   = "couplings: WithAlphaEM: alpha must be in [0, 1)"
)
