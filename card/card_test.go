// SPDX-License-Identifier: MIT

package card_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/ekoerr"
	"github.com/katalvlaran/eko/kernels"
)

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)

	return string(data)
}

// edit replaces the line starting with key (after indentation) by repl;
// an empty repl drops the line.
func edit(doc, key, repl string) string {
	lines := strings.Split(doc, "\n")
	out := lines[:0]
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), key+":") {
			if repl == "" {
				continue
			}
			indent := l[:len(l)-len(strings.TrimLeft(l, " "))]
			l = indent + repl
		}
		out = append(out, l)
	}

	return strings.Join(out, "\n")
}

func TestLoadTheoryFile(t *testing.T) {
	th, err := card.LoadTheoryFile("testdata/theory.yaml")
	require.NoError(t, err)
	qcd, qed := th.Orders()
	assert.Equal(t, 2, qcd)
	assert.Equal(t, 0, qed)
	assert.Equal(t, card.VFNS, th.Scheme)
	assert.Equal(t, [3]float64{1.51, 4.92, 172.5}, *th.Heavy.Masses)
	assert.Equal(t, 1.0, *th.XIF)
}

func TestLoadOperatorFile(t *testing.T) {
	op, err := card.LoadOperatorFile("testdata/operator.yaml")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 100, 1e4}, op.Targets)
	assert.Equal(t, 20, op.GridSize())
	assert.Equal(t, card.LogKind, op.XGrid.Generate.Kind)
	assert.True(t, *op.LogInterpolation)
	assert.Equal(t, 4, *op.Workers)
}

func TestTheory_RoundTripsThroughYAML(t *testing.T) {
	th, err := card.LoadTheory(strings.NewReader(readFile(t, "theory.yaml")))
	require.NoError(t, err)
	out, err := yaml.Marshal(th)
	require.NoError(t, err)
	again, err := card.LoadTheory(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(th, again))
}

func TestLoadTheory_Errors(t *testing.T) {
	base := readFile(t, "theory.yaml")
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown key", base + "\ncolour: red\n", card.ErrDecode},
		{"two documents", base + "\n---\n" + base, card.ErrDecode},
		{"empty", "", card.ErrDecode},
		{"missing order", edit(base, "order", ""), card.ErrInvalid},
		{"missing qed order", edit(base, "qed_order", ""), card.ErrInvalid},
		{"order too high", edit(base, "order", "order: 4"), card.ErrInvalid},
		{"bad scheme", edit(base, "scheme", "scheme: FONLL"), card.ErrInvalid},
		{"negative mass", edit(base, "masses", "masses: [1.51, -4.92, 172.5]"), card.ErrInvalid},
		{"missing heavy ratios", edit(base, "ratios", ""), card.ErrInvalid},
		{"unordered thresholds", edit(base, "ratios", "ratios: [4.0, 1.0, 1.0]"), card.ErrInconsistent},
		{"FFNS reference", edit(edit(base, "scheme", "scheme: FFNS"), "max_nf", "max_nf: 4"), card.ErrInconsistent},
		{"NNLO shifted threshold", edit(edit(base, "order", "order: 3"), "ratios", "ratios: [2.0, 1.0, 1.0]"), card.ErrInconsistent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := card.LoadTheory(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ekoerr.ErrConfiguration)
		})
	}
}

func TestLoadTheory_ReportsYAMLKeys(t *testing.T) {
	_, err := card.LoadTheory(strings.NewReader(edit(readFile(t, "theory.yaml"), "alpha_s", "")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alpha_s")
}

func TestLoadOperator_Errors(t *testing.T) {
	base := readFile(t, "operator.yaml")
	explicit := strings.Replace(base, "  generate:\n    kind: log\n    size: 20\n    xmin: 1.0e-4\n",
		"  nodes: [0.001, 0.01, 0.1, 0.5, 1.0]\n", 1)
	_, err := card.LoadOperator(strings.NewReader(edit(explicit, "degree", "degree: 3")))
	require.NoError(t, err)

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"no targets", edit(base, "targets", "targets: []"), card.ErrInvalid},
		{"negative target", edit(base, "targets", "targets: [10, -1]"), card.ErrInvalid},
		{"degree too large", edit(explicit, "degree", "degree: 5"), card.ErrInconsistent},
		{"unsorted nodes", edit(edit(explicit, "nodes", "nodes: [0.1, 0.01, 1.0]"), "degree", "degree: 1"), card.ErrInconsistent},
		{"node above one", edit(explicit, "nodes", "nodes: [0.1, 0.5, 2.0]"), card.ErrInvalid},
		{"no grid", strings.Replace(explicit, "  nodes: [0.001, 0.01, 0.1, 0.5, 1.0]\n", "", 1), card.ErrInvalid},
		{"bad method", edit(base, "method", "method: magic"), kernels.ErrUnknownMethod},
		{"zero workers", edit(base, "workers", "workers: 0"), card.ErrInvalid},
		{"missing cut", edit(base, "cut", ""), card.ErrInvalid},
		{"bad inverse", edit(base, "backward_inverse", "backward_inverse: approximate"), card.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := card.LoadOperator(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ekoerr.ErrConfiguration)
		})
	}
}

func TestLoadOperator_LegacyMethod(t *testing.T) {
	op, err := card.LoadOperator(strings.NewReader(edit(readFile(t, "operator.yaml"), "method", "method: EXA")))
	require.NoError(t, err)
	assert.Equal(t, "EXA", op.Method)
}
