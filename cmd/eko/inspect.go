// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eko/output"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <bundle>",
	Short: "Print the metadata of a bundle",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := output.Load(f)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	md := b.Metadata
	fmt.Fprintf(w, "id       %s\n", md.ID)
	fmt.Fprintf(w, "created  %s\n", md.Created.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "q0²      %g GeV² (nf=%d)\n", md.Q02, md.NF0)
	fmt.Fprintf(w, "x-grid   %d nodes in [%g, %g], degree %d, log=%t\n",
		len(md.XGrid), md.XGrid[0], md.XGrid[len(md.XGrid)-1], md.Degree, md.Log)
	fmt.Fprintf(w, "basis    %s\n", md.Basis)
	fmt.Fprintf(w, "targets  %d\n", len(b.Targets))
	for _, t := range b.Targets {
		var maxErr float64
		for _, e := range t.Error {
			maxErr = max(maxErr, e)
		}
		fmt.Fprintf(w, "  q²=%-12g nf=%d  max error %.3e\n", t.Q2, t.NF, maxErr)
	}
	for _, warn := range md.Warnings {
		fmt.Fprintf(w, "%s\n", warn)
	}

	return nil
}
