// SPDX-License-Identifier: MIT

package ekoerr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration classifies every input validation failure.
	ErrConfiguration = errors.New("eko: configuration error")

	// ErrNumericalConvergence classifies every numerical budget exhaustion.
	ErrNumericalConvergence = errors.New("eko: numerical convergence error")
)

// Configuration derives a package sentinel classified as ErrConfiguration:
//
//	var ErrBadScale = ekoerr.Configuration("thresholds: non-positive scale")
func Configuration(msg string) error {
	return &classified{msg: msg, class: ErrConfiguration}
}

// Convergence derives a package sentinel classified as ErrNumericalConvergence.
func Convergence(msg string) error {
	return &classified{msg: msg, class: ErrNumericalConvergence}
}

// classified is a sentinel that also matches its class under errors.Is.
type classified struct {
	msg   string
	class error
}

func (c *classified) Error() string { return c.msg }

// Is reports whether target is this sentinel's class.
func (c *classified) Is(target error) bool { return target == c.class }

// ConvergenceError reports where a numerical procedure gave up.
type ConvergenceError struct {
	Op     string  // procedure, e.g. "couplings.rk45" or "mellin.quad"
	Detail string  // free-form location, e.g. "nf=4 q2=1.0e+04"
	Err    error   // underlying sentinel
	Value  float64 // achieved error estimate or residual, when meaningful
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: %s (residual %.3e): %v", e.Op, e.Detail, e.Value, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ConvergenceError) Unwrap() error { return e.Err }

// Is matches ErrNumericalConvergence directly.
func (e *ConvergenceError) Is(target error) bool { return target == ErrNumericalConvergence }

// IntegrationWarning records an inversion integral whose error estimate
// exceeded tolerance when the subdivision limit was reached.
//
// A non-empty Failure marks a node whose integral could not be computed at
// all; its row holds NaN values and +Inf errors.
type IntegrationWarning struct {
	Q2        float64 `yaml:"q2"`
	XIndex    int     `yaml:"x_index"`
	Error     float64 `yaml:"error"`
	Intervals int     `yaml:"intervals"`
	Failure   string  `yaml:"failure,omitempty"`
}

// Failed reports whether the node has no usable value.
func (w IntegrationWarning) Failed() bool { return w.Failure != "" }

func (w IntegrationWarning) String() string {
	if w.Failed() {
		return fmt.Sprintf("integration failure: q2=%g x[%d]: %s", w.Q2, w.XIndex, w.Failure)
	}

	return fmt.Sprintf("integration warning: q2=%g x[%d] error=%.3e after %d intervals",
		w.Q2, w.XIndex, w.Error, w.Intervals)
}
