// SPDX-License-Identifier: MIT

package card

import "fmt"

// Flavour number schemes.
const (
	FFNS = "FFNS"
	VFNS = "VFNS"
)

// Heavy-quark mass schemes.
const (
	Pole  = "POLE"
	MSbar = "MSBAR"
)

// Theory fixes the physics of a run.
type Theory struct {
	// Order counts QCD loops: 1 (LO) … 3 (NNLO).
	Order *int `yaml:"order" validate:"required,min=1,max=3"`
	// QEDOrder is 0 (pure QCD) or 1.
	QEDOrder *int `yaml:"qed_order" validate:"required,min=0,max=1"`

	AlphaS  *float64 `yaml:"alpha_s" validate:"required,gt=0,lt=1"`
	AlphaEM *float64 `yaml:"alpha_em" validate:"required,gt=0,lt=1"`
	// QRef is the scale of AlphaS in GeV, with NFRef active flavours.
	QRef  *float64 `yaml:"q_ref" validate:"required,gt=0"`
	NFRef *int     `yaml:"nf_ref" validate:"required,min=3,max=6"`

	// Q0 is the initial scale of every operator in GeV.
	Q0 *float64 `yaml:"q0" validate:"required,gt=0"`

	// Scheme is FFNS or VFNS; MaxNF is the fixed flavour number in FFNS
	// and the highest active one in VFNS.
	Scheme string `yaml:"scheme" validate:"required,oneof=FFNS VFNS"`
	MaxNF  *int   `yaml:"max_nf" validate:"required,min=3,max=6"`

	CouplingMethod string `yaml:"coupling_method" validate:"required,oneof=exact expanded"`

	Heavy *Heavy `yaml:"heavy" validate:"required"`

	ScaleVariation string   `yaml:"scale_variation" validate:"required,oneof=unvaried exponentiated expanded"`
	XIF            *float64 `yaml:"xif" validate:"required,gt=0"`
}

// Heavy describes charm, bottom and top.
type Heavy struct {
	MassScheme string `yaml:"mass_scheme" validate:"required,oneof=POLE MSBAR"`
	// Masses are pole masses, or m_h(μ_h) in MSBAR, in GeV.
	Masses *[3]float64 `yaml:"masses" validate:"required,dive,gt=0"`
	// MassScales are the μ_h of MSBAR reference masses in GeV.
	MassScales *[3]float64 `yaml:"mass_scales" validate:"required,dive,gt=0"`
	// Ratios are k_h = μ_h/m_h of the matching scales.
	Ratios *[3]float64 `yaml:"ratios" validate:"required,dive,gt=0"`
}

// Validate checks every field and the relations between them.
func (t *Theory) Validate() error {
	if err := check(t); err != nil {
		return err
	}
	if t.Scheme == FFNS && *t.NFRef != *t.MaxNF {
		return fmt.Errorf("nf_ref=%d with FFNS max_nf=%d: %w", *t.NFRef, *t.MaxNF, ErrInconsistent)
	}
	if *t.NFRef > *t.MaxNF {
		return fmt.Errorf("nf_ref=%d above max_nf=%d: %w", *t.NFRef, *t.MaxNF, ErrInconsistent)
	}
	if t.Scheme == VFNS && t.Heavy.MassScheme == Pole {
		m, k := t.Heavy.Masses, t.Heavy.Ratios
		for i := 1; i < 3 && i+4 <= *t.MaxNF; i++ {
			if !(k[i]*m[i] > k[i-1]*m[i-1]) {
				return fmt.Errorf("matching scales %g ≤ %g: %w", k[i]*m[i], k[i-1]*m[i-1], ErrInconsistent)
			}
		}
	}
	if *t.Order == 3 && t.Scheme == VFNS {
		for i, k := range t.Heavy.Ratios {
			if k != 1 && i+4 <= *t.MaxNF {
				return fmt.Errorf("ratio of quark %d is %g at NNLO: %w", i+4, k, ErrInconsistent)
			}
		}
	}

	return nil
}

// Orders returns (QCD, QED) loop counts.
func (t *Theory) Orders() (qcd, qed int) { return *t.Order, *t.QEDOrder }
