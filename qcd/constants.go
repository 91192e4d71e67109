// SPDX-License-Identifier: MIT

package qcd

// Colour factors of SU(3).
const (
	NC = 3.0
	CA = 3.0
	CF = 4.0 / 3.0
	TR = 0.5
)

// Squared electric charges of up- and down-type quarks.
const (
	EU2 = 4.0 / 9.0
	ED2 = 1.0 / 9.0
)

// Flavour number bounds accepted anywhere in the module.
const (
	MinFlavors = 3
	MaxFlavors = 6
)

const zeta3 = 1.2020569031595942
