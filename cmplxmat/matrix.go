// SPDX-License-Identifier: MIT

package cmplxmat

// Matrix is a dense square complex matrix stored row-major.
// The zero value is not usable; construct with New, Identity or FromRows.
type Matrix struct {
	n    int          // order of the matrix
	data []complex128 // row-major, len n*n
}

// New returns an n×n zero matrix. Panics if n <= 0.
func New(n int) *Matrix {
	if n <= 0 {
		panic(panicBadSize)
	}

	return &Matrix{n: n, data: make([]complex128, n*n)}
}

// Identity returns the n×n identity.
func Identity(n int) *Matrix {
	m := New(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// FromRows copies a square [][]complex128 into a Matrix.
func FromRows(rows [][]complex128) *Matrix {
	n := len(rows)
	m := New(n)
	for i, r := range rows {
		if len(r) != n {
			panic(panicRaggedRows)
		}
		copy(m.data[i*n:(i+1)*n], r)
	}

	return m
}

// N returns the order of m.
func (m *Matrix) N() int { return m.n }

// At returns m[i,j].
func (m *Matrix) At(i, j int) complex128 { return m.data[i*m.n+j] }

// Set assigns m[i,j] = v.
func (m *Matrix) Set(i, j int, v complex128) { m.data[i*m.n+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{n: m.n, data: make([]complex128, len(m.data))}
	copy(c.data, m.data)

	return c
}

// Rows exports m as a fresh [][]complex128.
func (m *Matrix) Rows() [][]complex128 {
	out := make([][]complex128, m.n)
	for i := range out {
		out[i] = make([]complex128, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// Norm1 returns the maximum absolute column sum, used to pick the scaling
// of Exp.
func (m *Matrix) Norm1() float64 {
	var best float64
	for j := 0; j < m.n; j++ {
		var s float64
		for i := 0; i < m.n; i++ {
			s += cabs(m.data[i*m.n+j])
		}
		if s > best {
			best = s
		}
	}

	return best
}

// Trace returns the sum of the diagonal.
func (m *Matrix) Trace() complex128 {
	var t complex128
	for i := 0; i < m.n; i++ {
		t += m.data[i*m.n+i]
	}

	return t
}

// Mul returns a·b.
func Mul(a, b *Matrix) *Matrix {
	dst := New(a.n)
	MulTo(dst, a, b)

	return dst
}

// MulTo writes a·b into dst. dst must not alias a or b.
//
// Complexity: O(n³).
func MulTo(dst, a, b *Matrix) {
	if a.n != b.n || dst.n != a.n {
		panic(panicShapeMismatch)
	}
	n := a.n
	var (
		i, j, k int
		aik     complex128
	)
	for i = range dst.data {
		dst.data[i] = 0
	}
	for i = 0; i < n; i++ {
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k] // hoisted row element
			if aik == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				dst.data[i*n+j] += aik * b.data[k*n+j]
			}
		}
	}
}

// Chain returns ms[0]·ms[1]·…·ms[len-1].
func Chain(ms ...*Matrix) *Matrix {
	out := ms[0].Clone()
	for _, m := range ms[1:] {
		out = Mul(out, m)
	}

	return out
}

// Add returns a + b.
func Add(a, b *Matrix) *Matrix {
	if a.n != b.n {
		panic(panicShapeMismatch)
	}
	c := a.Clone()
	for i, v := range b.data {
		c.data[i] += v
	}

	return c
}

// Sub returns a - b.
func Sub(a, b *Matrix) *Matrix {
	if a.n != b.n {
		panic(panicShapeMismatch)
	}
	c := a.Clone()
	for i, v := range b.data {
		c.data[i] -= v
	}

	return c
}

// Scale returns s·a.
func Scale(a *Matrix, s complex128) *Matrix {
	c := a.Clone()
	for i := range c.data {
		c.data[i] *= s
	}

	return c
}

// AddScaled performs dst += s·a in place and returns dst.
func AddScaled(dst, a *Matrix, s complex128) *Matrix {
	if a.n != dst.n {
		panic(panicShapeMismatch)
	}
	for i, v := range a.data {
		dst.data[i] += s * v
	}

	return dst
}

// MaxAbsDiff returns max |a[i,j]-b[i,j]|; handy in tests and convergence loops.
func MaxAbsDiff(a, b *Matrix) float64 {
	if a.n != b.n {
		panic(panicShapeMismatch)
	}
	var best float64
	for i, v := range a.data {
		if d := cabs(v - b.data[i]); d > best {
			best = d
		}
	}

	return best
}
