// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/runner"
)

var couplingsFlags struct {
	theory string
	q2     []float64
}

var couplingsCmd = &cobra.Command{
	Use:     "couplings",
	Short:   "Print α_s and the flavour number at the given scales",
	Example: `  eko couplings --theory theory.yaml --q2 10,100,1e4`,
	Args:    cobra.NoArgs,
	RunE:    runCouplings,
}

func init() {
	f := couplingsCmd.Flags()
	f.StringVar(&couplingsFlags.theory, "theory", "", "theory card (YAML)")
	f.Float64SliceVar(&couplingsFlags.q2, "q2", nil, "scales μ² in GeV²")
	_ = couplingsCmd.MarkFlagRequired("theory")
	_ = couplingsCmd.MarkFlagRequired("q2")
}

func runCouplings(cmd *cobra.Command, _ []string) error {
	th, err := card.LoadTheoryFile(couplingsFlags.theory)
	if err != nil {
		return err
	}
	c, err := runner.Couplings(th)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "thresholds μ²_h = %v GeV²\n", c.Atlas().Thresholds())
	for _, q2 := range couplingsFlags.q2 {
		alpha, err := c.Alpha(q2)
		if err != nil {
			return fmt.Errorf("q2=%g: %w", q2, err)
		}
		fmt.Fprintf(w, "q²=%-12g nf=%d  α_s=%.10f\n", q2, c.Atlas().NF(q2), alpha)
	}

	return nil
}
