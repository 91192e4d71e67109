// SPDX-License-Identifier: MIT

// Package ekoerr defines the error taxonomy shared by every package of the
// module.
//
// Two classes are fatal and are exposed as sentinels so any wrapped error
// can be classified with errors.Is:
//
//   - ErrConfiguration: invalid or inconsistent input detected before numeric
//     work starts (bad scales, unknown methods, missing card fields).
//   - ErrNumericalConvergence: an ODE solver, root finder or contour
//     integral exhausted its budget. ConvergenceError carries the context.
//
// A third class, IntegrationWarning, is not an error: it records a Mellin
// inversion integral that finished with an error estimate above tolerance.
// Warnings are collected into the output bundle and never abort a run.
package ekoerr
