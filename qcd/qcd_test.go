// SPDX-License-Identifier: MIT

package qcd_test

import (
	"testing"

	"github.com/katalvlaran/eko/qcd"
	"github.com/stretchr/testify/assert"
)

func TestBeta_KnownValues(t *testing.T) {
	tests := []struct {
		nf             int
		b0, b1, b2, b3 float64
	}{
		{3, 9, 64, 3863.0 / 6.0, 12090.378130803711},
		{4, 25.0 / 3.0, 154.0 / 3.0, 21943.0 / 54.0, 8035.186419790116},
		{5, 23.0 / 3.0, 116.0 / 3.0, 9769.0 / 54.0, 4826.156328790895},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.b0, qcd.Beta0(tt.nf), 1e-12)
		assert.InDelta(t, tt.b1, qcd.Beta1(tt.nf), 1e-12)
		assert.InDelta(t, tt.b2, qcd.Beta2(tt.nf), 1e-10)
		assert.InDelta(t, tt.b3, qcd.Beta3(tt.nf), 1e-6)
	}
	assert.Equal(t, 0.0, qcd.Beta(4, 5))
	assert.Len(t, qcd.Betas(3, 4), 3)
}

func TestCharges(t *testing.T) {
	for nf := qcd.MinFlavors; nf <= qcd.MaxFlavors; nf++ {
		c := qcd.Charges(nf)
		nu, nd := qcd.UpFlavors(nf), qcd.DownFlavors(nf)
		assert.Equal(t, nf, nu+nd)
		assert.InDelta(t, c.E2Sum, float64(nf)*c.E2Avg, 1e-15)
		// e2delta = vde2m - vue2m + e2avg
		assert.InDelta(t, c.VDE2M-c.VUE2M+c.E2Avg, c.E2Delta, 1e-15)
	}
	c := qcd.Charges(5)
	assert.InDelta(t, 2*qcd.EU2+3*qcd.ED2, c.E2Sum, 1e-15)
	assert.True(t, qcd.IsUpType(4))
	assert.False(t, qcd.IsUpType(5))
}
