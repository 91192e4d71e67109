// SPDX-License-Identifier: MIT

// Package thresholds maps factorisation scales to the number of active
// flavours and decomposes an evolution between two scales into contiguous
// fixed-flavour segments.
//
// An Atlas partitions (0, ∞) in μ² by the heavy-quark matching scales
// μ²_h = k_h² m_h² of charm, bottom and top:
//
//	nf=3: (0, μ²_c)   nf=4: [μ²_c, μ²_b)   nf=5: [μ²_b, μ²_t)   nf=6: [μ²_t, ∞)
//
// A scale sitting exactly on a wall belongs to the upper patch unless the
// caller names the flavour number explicitly through a Point. A fixed
// flavour scheme (NewFFNS) is the degenerate atlas with a single patch.
//
// Path returns the segments of an evolution, forward or backward:
//
//	segs, err := atlas.Path(atlas.At(1.65), atlas.At(1e4))
//	// [{nf=3 1.65→1.96} {nf=4 1.96→20.25} {nf=5 20.25→1e4}]
package thresholds
