// SPDX-License-Identifier: MIT

// Package card defines the theory and operator cards that configure a run
// and loads them from YAML.
//
// Cards have no defaults: every field must be present. Numeric fields
// whose zero value is meaningful are pointers so a missing key is
// detected. Decoding is strict (unknown keys fail) and validation, both
// per field and across fields, happens before any numerical work. Every
// failure matches ekoerr.ErrConfiguration.
//
// Example theory card:
//
//	order: 2
//	qed_order: 0
//	alpha_s: 0.118
//	alpha_em: 0.007496
//	q_ref: 91.2
//	nf_ref: 5
//	q0: 1.65
//	scheme: VFNS
//	max_nf: 6
//	coupling_method: exact
//	heavy:
//	  mass_scheme: POLE
//	  masses: [1.51, 4.92, 172.5]
//	  mass_scales: [1.51, 4.92, 172.5]
//	  ratios: [1, 1, 1]
//	scale_variation: unvaried
//	xif: 1
package card
