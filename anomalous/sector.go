// SPDX-License-Identifier: MIT

package anomalous

import (
	"fmt"

	"github.com/katalvlaran/eko/cmplxmat"
)

// Sector tags a block of the evolution basis.
type Sector int

const (
	NSPlus Sector = iota
	NSMinus
	NSValence
	Singlet
	NSPlusU
	NSPlusD
	NSMinusU
	NSMinusD
	SingletQED
	ValenceQED
)

var sectorNames = [...]string{
	"ns+", "ns-", "nsV", "S",
	"ns+u", "ns+d", "ns-u", "ns-d",
	"S_qed", "V_qed",
}

func (s Sector) String() string {
	if s < 0 || int(s) >= len(sectorNames) {
		return fmt.Sprintf("Sector(%d)", int(s))
	}

	return sectorNames[s]
}

// IsMatrix reports whether the sector is a matrix block.
func (s Sector) IsMatrix() bool {
	return s == Singlet || s == SingletQED || s == ValenceQED
}

// IsQED reports whether the sector only exists with QED corrections.
func (s Sector) IsQED() bool { return s >= NSPlusU }

// Orders fixes the perturbative truncation: QCD counts loops (1..3),
// QED is 0 or 1.
type Orders struct {
	QCD int
	QED int
}

func (o Orders) validate() error {
	if o.QCD < 1 || o.QCD > MaxQCD || o.QED < 0 || o.QED > MaxQED {
		return fmt.Errorf("(%d, %d): %w", o.QCD, o.QED, ErrOrder)
	}

	return nil
}

// Mixed reports whether the O(a_s a_em) term is present.
func (o Orders) Mixed() bool { return o.QCD >= 1 && o.QED >= 1 }

// Highest orders available.
const (
	MaxQCD = 3
	MaxQED = 1
)

// Scalar holds the anomalous dimensions of a scalar sector.
type Scalar struct {
	QCD   []complex128 // γ_0 … γ_{QCD-1}
	EM    complex128   // O(a_em), zero without QED
	Mixed complex128   // O(a_s a_em), zero without QED
}

// Matrix holds the anomalous dimensions of a matrix sector.
type Matrix struct {
	QCD   []*cmplxmat.Matrix
	EM    *cmplxmat.Matrix // nil without QED
	Mixed *cmplxmat.Matrix // nil without QED
}
