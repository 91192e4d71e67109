// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/eko/card"
	"github.com/katalvlaran/eko/output"
	"github.com/katalvlaran/eko/runner"
)

var runFlags struct {
	theory, operator, out string
	workers               int
	metricsAddr           string
	basis                 string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the operators of a theory and an operator card",
	Example: `  eko run --theory theory.yaml --operator operator.yaml --out eko.tar
  eko run --theory theory.yaml --operator operator.yaml --out eko.tar --workers 8 --metrics-addr :9090`,
	Args: cobra.NoArgs,
	RunE: runEvolve,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.theory, "theory", "", "theory card (YAML)")
	f.StringVar(&runFlags.operator, "operator", "", "operator card (YAML)")
	f.StringVarP(&runFlags.out, "out", "o", "", "output bundle (tar)")
	f.IntVarP(&runFlags.workers, "workers", "j", 0, "override the worker count of the operator card")
	f.StringVar(&runFlags.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address while running")
	f.StringVar(&runFlags.basis, "basis", string(output.Flavor), "basis of the stored operators: flavor or evolution")
	for _, name := range []string{"theory", "operator", "out"} {
		_ = runCmd.MarkFlagRequired(name)
	}
}

func runEvolve(cmd *cobra.Command, _ []string) error {
	th, err := card.LoadTheoryFile(runFlags.theory)
	if err != nil {
		return err
	}
	op, err := card.LoadOperatorFile(runFlags.operator)
	if err != nil {
		return err
	}

	opts := []runner.Option{runner.WithLogger(logger)}
	if runFlags.workers > 0 {
		opts = append(opts, runner.WithWorkers(runFlags.workers))
	}
	if runFlags.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, runner.WithRegisterer(reg))
		srv := &http.Server{Addr: runFlags.metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", zap.String("addr", runFlags.metricsAddr))
	}

	b, err := runner.Evolve(cmd.Context(), th, op, opts...)
	if err != nil {
		return err
	}
	if err := b.Rotate(output.Basis(runFlags.basis)); err != nil {
		return err
	}

	f, err := os.Create(runFlags.out)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	if err := b.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close bundle: %w", err)
	}
	logger.Info("bundle written", zap.String("path", runFlags.out), zap.String("id", b.Metadata.ID))

	return nil
}
