// SPDX-License-Identifier: MIT

package mellin

import (
	"container/heap"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/eko/ekoerr"
)

// Integrand fills dst with the integrand components at u.
type Integrand func(u float64, dst []float64) error

// Result of a vector integration.
type Result struct {
	Value     []float64
	Error     []float64
	Intervals int
	Converged bool // false when the interval limit was reached first
}

// MaxError returns the largest component error.
func (r Result) MaxError() float64 {
	var m float64
	for _, e := range r.Error {
		m = math.Max(m, e)
	}

	return m
}

// rule holds Gauss–Legendre nodes on [-1, 1].
type rule struct {
	x, w []float64
}

func newRule(n int) rule {
	r := rule{x: make([]float64, n), w: make([]float64, n)}
	quad.Legendre{}.FixedLocations(r.x, r.w, -1, 1)

	return r
}

// interval is one piece of the subdivision.
type interval struct {
	a, b  float64
	value []float64
	err   []float64
	score float64 // Σ err, the split priority
}

// intervalPQ is a max-heap on score.
type intervalPQ []*interval

func (pq intervalPQ) Len() int           { return len(pq) }
func (pq intervalPQ) Less(i, j int) bool { return pq[i].score > pq[j].score }
func (pq intervalPQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *intervalPQ) Push(x interface{}) {
	*pq = append(*pq, x.(*interval))
}
func (pq *intervalPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}

// integrator evaluates the paired rules on intervals.
type integrator struct {
	f         Integrand
	dim       int
	high, low rule
	buf       []float64
}

func (g *integrator) eval(a, b float64) (*interval, error) {
	it := &interval{a: a, b: b, value: make([]float64, g.dim), err: make([]float64, g.dim)}
	lowSum := make([]float64, g.dim)
	half, mid := (b-a)/2, (a+b)/2
	if err := g.apply(g.high, mid, half, it.value); err != nil {
		return nil, err
	}
	if err := g.apply(g.low, mid, half, lowSum); err != nil {
		return nil, err
	}
	for i := range it.value {
		it.err[i] = math.Abs(it.value[i] - lowSum[i])
		it.score += it.err[i]
	}

	return it, nil
}

func (g *integrator) apply(r rule, mid, half float64, acc []float64) error {
	for k, xk := range r.x {
		u := mid + half*xk
		if err := g.f(u, g.buf); err != nil {
			return err
		}
		w := half * r.w[k]
		for i, v := range g.buf {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &ekoerr.ConvergenceError{
					Op:     "mellin.quad",
					Detail: fmt.Sprintf("component %d at u=%.6g", i, u),
					Err:    ErrNotFinite,
					Value:  v,
				}
			}
			acc[i] += w * v
		}
	}

	return nil
}

// Integrate integrates the dim components of f over [a, b], bisecting the
// interval with the largest summed error until every component meets
// max(EpsAbs, EpsRel·|value|, Floor·max|value|) or Limit intervals exist.
// Reaching the limit is not an error: Result.Converged is false and the caller decides.
func Integrate(f Integrand, dim int, a, b float64, opts ...Option) (Result, error) {
	if !(b > a) {
		return Result{}, fmt.Errorf("[%g, %g]: %w", a, b, ErrInterval)
	}
	o := gather(opts)
	g := &integrator{
		f:    f,
		dim:  dim,
		high: newRule(o.Nodes),
		low:  newRule((o.Nodes + 1) / 2),
		buf:  make([]float64, dim),
	}
	first, err := g.eval(a, b)
	if err != nil {
		return Result{}, err
	}
	pq := &intervalPQ{first}
	heap.Init(pq)
	total := append([]float64(nil), first.value...)
	totalErr := append([]float64(nil), first.err...)

	for {
		if converged(total, totalErr, o) {
			return Result{Value: total, Error: totalErr, Intervals: pq.Len(), Converged: true}, nil
		}
		if pq.Len() >= o.Limit {
			return Result{Value: total, Error: totalErr, Intervals: pq.Len()}, nil
		}
		worst := heap.Pop(pq).(*interval)
		mid := (worst.a + worst.b) / 2
		left, err := g.eval(worst.a, mid)
		if err != nil {
			return Result{}, err
		}
		right, err := g.eval(mid, worst.b)
		if err != nil {
			return Result{}, err
		}
		for i := range total {
			total[i] += left.value[i] + right.value[i] - worst.value[i]
			totalErr[i] += left.err[i] + right.err[i] - worst.err[i]
			if totalErr[i] < 0 {
				totalErr[i] = 0
			}
		}
		heap.Push(pq, left)
		heap.Push(pq, right)
	}
}

func converged(total, totalErr []float64, o Options) bool {
	var peak float64
	for _, v := range total {
		peak = math.Max(peak, math.Abs(v))
	}
	floor := math.Max(o.EpsAbs, o.Floor*peak)
	for i, v := range total {
		if totalErr[i] > math.Max(floor, o.EpsRel*math.Abs(v)) {
			return false
		}
	}

	return true
}

// Invert returns f(x) for F given pointwise as a complex function, along
// path restricted to u ∈ [1/2, 1-cut]. It is the scalar convenience form of
// Integrate.
func Invert(f func(n complex128) complex128, path Path, logx float64, opts ...Option) (value, errEst float64, err error) {
	lo, hi := Bounds(opts...)
	res, err := Integrate(func(u float64, dst []float64) error {
		n, jac := path.At(u)
		dst[0] = real(Prefactor * cmplx.Exp(-n*complex(logx, 0)) * f(n) * jac)
		return nil
	}, 1, lo, hi, opts...)
	if err != nil {
		return 0, 0, err
	}

	return res.Value[0], res.Error[0], nil
}
