// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eko/anomalous"
	"github.com/katalvlaran/eko/cmplxmat"
	"github.com/katalvlaran/eko/qcd"
)

// Block is a set of evolution-basis positions evolved together.
type Block struct {
	// Sector drives the block; ignored when Identity is set.
	Sector anomalous.Sector

	// Identity marks elements carried unevolved (inactive heavy quarks,
	// the photon without QED).
	Identity bool

	// Indices are evolution-basis positions, in the row order of the
	// sector's anomalous dimension for matrix sectors.
	Indices []int
}

// Basis is the evolution basis for a fixed nf.
type Basis struct {
	NF     int
	QED    bool
	Labels [Size]string
	Blocks []Block

	r, rInv   *mat.Dense
	cr, crInv *cmplxmat.Matrix
}

// qcdOrder fixes the T/V ladder: T3 = u+ - d+, T8 = u+ + d+ - 2s+, ...
var qcdOrder = []int{2, 1, 3, 4, 5, 6}

type cacheKey struct {
	nf  int
	qed bool
}

var cache sync.Map // cacheKey -> *Basis

// For returns the evolution basis for nf active flavours.
func For(nf int, qed bool) (*Basis, error) {
	if nf < qcd.MinFlavors || nf > qcd.MaxFlavors {
		return nil, fmt.Errorf("nf=%d: %w", nf, ErrFlavors)
	}
	key := cacheKey{nf: nf, qed: qed}
	if b, ok := cache.Load(key); ok {
		return b.(*Basis), nil
	}
	var bb builder
	if qed {
		bb.qed(nf)
	} else {
		bb.qcd(nf)
	}
	b, err := bb.finish(nf, qed)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(key, b)

	return actual.(*Basis), nil
}

// Evolution returns the nf = 6 QCD basis, the reference evolution basis of
// stored operators.
func Evolution() *Basis {
	b, err := For(qcd.MaxFlavors, false)
	if err != nil {
		panic(err)
	}

	return b
}

// Rotation returns R (evolution = R·flavour). Callers must not modify it.
func (b *Basis) Rotation() mat.Matrix { return b.r }

// Inverse returns R⁻¹. Callers must not modify it.
func (b *Basis) Inverse() mat.Matrix { return b.rInv }

// Complex returns R and R⁻¹ as complex matrices for N-space composition.
// Callers must not modify them.
func (b *Basis) Complex() (r, rInv *cmplxmat.Matrix) { return b.cr, b.crInv }

// Lookup returns the position of label.
func (b *Basis) Lookup(label string) (int, error) {
	for i, l := range b.Labels {
		if l == label {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", label, ErrUnknownLabel)
}

// Compose returns R⁻¹·D·R where D is the block-diagonal evolution-space
// operator given per block; ops[i] acts on b.Blocks[i] and must have order
// len(Indices). Identity blocks ignore their entry.
func (b *Basis) Compose(ops []*cmplxmat.Matrix) *cmplxmat.Matrix {
	d := cmplxmat.New(Size)
	for i, blk := range b.Blocks {
		if blk.Identity {
			for _, k := range blk.Indices {
				d.Set(k, k, 1)
			}
			continue
		}
		for r, kr := range blk.Indices {
			for c, kc := range blk.Indices {
				d.Set(kr, kc, ops[i].At(r, c))
			}
		}
	}

	return cmplxmat.Chain(b.crInv, d, b.cr)
}

type builder struct {
	labels []string
	rows   []row
	blocks []Block
}

func (bb *builder) push(label string, r row) int {
	bb.labels = append(bb.labels, label)
	bb.rows = append(bb.rows, r)

	return len(bb.rows) - 1
}

func (bb *builder) block(s anomalous.Sector, idx ...int) {
	bb.blocks = append(bb.blocks, Block{Sector: s, Indices: idx})
}

func (bb *builder) identity(idx ...int) {
	bb.blocks = append(bb.blocks, Block{Identity: true, Indices: idx})
}

func active(nf int) []int {
	pids := make([]int, nf)
	for i := range pids {
		pids[i] = i + 1
	}

	return pids
}

func (bb *builder) inactive(nf int) {
	for pid := nf + 1; pid <= qcd.MaxFlavors; pid++ {
		bb.identity(bb.push(quarkNames[pid]+"+", plus(pid)))
		bb.identity(bb.push(quarkNames[pid]+"-", minus(pid)))
	}
}

func (bb *builder) qcd(nf int) {
	bb.identity(bb.push("ph", unit(PhotonIndex)))
	s := bb.push("S", sum(active(nf), plus))
	g := bb.push("g", unit(GluonIndex))
	bb.block(anomalous.Singlet, s, g)
	bb.block(anomalous.NSValence, bb.push("V", sum(active(nf), minus)))
	quarks := qcdOrder[:nf]
	for k := 2; k <= nf; k++ {
		bb.block(anomalous.NSMinus, bb.push(fmt.Sprintf("V%d", k*k-1), ladder(quarks, k, minus)))
	}
	for k := 2; k <= nf; k++ {
		bb.block(anomalous.NSPlus, bb.push(fmt.Sprintf("T%d", k*k-1), ladder(quarks, k, plus)))
	}
	bb.inactive(nf)
}

func (bb *builder) qed(nf int) {
	nu, nd := qcd.UpFlavors(nf), qcd.DownFlavors(nf)
	up := []int{2, 4, 6}[:nu]
	down := []int{1, 3, 5}[:nd]
	ratio := float64(nd) / float64(nu)

	ph := bb.push("ph", unit(PhotonIndex))
	g := bb.push("g", unit(GluonIndex))
	s := bb.push("S", sum(active(nf), plus))
	sd := bb.push("Sdelta", scale(sum(up, plus), ratio).add(sum(down, plus), -1))
	bb.block(anomalous.SingletQED, g, ph, s, sd)
	v := bb.push("V", sum(active(nf), minus))
	vd := bb.push("Vdelta", scale(sum(up, minus), ratio).add(sum(down, minus), -1))
	bb.block(anomalous.ValenceQED, v, vd)
	for k := 2; k <= 3; k++ {
		if k <= nd {
			bb.block(anomalous.NSPlusD, bb.push(fmt.Sprintf("Td%d", k*k-1), ladder(down, k, plus)))
			bb.block(anomalous.NSMinusD, bb.push(fmt.Sprintf("Vd%d", k*k-1), ladder(down, k, minus)))
		}
		if k <= nu {
			bb.block(anomalous.NSPlusU, bb.push(fmt.Sprintf("Tu%d", k*k-1), ladder(up, k, plus)))
			bb.block(anomalous.NSMinusU, bb.push(fmt.Sprintf("Vu%d", k*k-1), ladder(up, k, minus)))
		}
	}
	bb.inactive(nf)
}

func scale(r row, c float64) row {
	for i := range r {
		r[i] *= c
	}

	return r
}

func (bb *builder) finish(nf int, qed bool) (*Basis, error) {
	if len(bb.rows) != Size {
		panic(fmt.Sprintf("basis: built %d rows for nf=%d", len(bb.rows), nf))
	}
	data := make([]float64, 0, Size*Size)
	for _, r := range bb.rows {
		data = append(data, r[:]...)
	}
	r := mat.NewDense(Size, Size, data)
	var inv mat.Dense
	if err := inv.Inverse(r); err != nil {
		return nil, fmt.Errorf("nf=%d: %w: %v", nf, errNotInvertible, err)
	}
	b := &Basis{NF: nf, QED: qed, Blocks: bb.blocks, r: r, rInv: &inv}
	copy(b.Labels[:], bb.labels)
	b.cr, b.crInv = toComplex(r), toComplex(&inv)

	return b, nil
}

func toComplex(m mat.Matrix) *cmplxmat.Matrix {
	n, _ := m.Dims()
	c := cmplxmat.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c.Set(i, j, complex(m.At(i, j), 0))
		}
	}

	return c
}
