// Package cmd provides the command-line interface for cachecost.
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/cachecost/estimation"
	"github.com/sarchlab/cachecost/report"
)

const (
	dataWidthFlag       = "data-width"
	tagWidthFlag        = "tag-width"
	cacheSizeFlag       = "cache-size"
	memAccessDelayFlag  = "mem-access-delay"
	singleGateDelayFlag = "single-gate-delay"
)

// newRootCmd creates the cachecost command. Flags default to the example
// cache, so running it without arguments reports the example.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cachecost",
		Short: "Estimate the gate count and latency of a simple cache.",
		Long: `cachecost estimates the number of logic gates in a direct-mapped ` +
			`cache and the latency of read hits, read misses, and writes, ` +
			`from the width of the data and tag fields, the number of ` +
			`lines, the memory latency, and the delay of a single gate.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsFromFlags(cmd)
			if err != nil {
				return err
			}

			return Run(
				estimation.DefaultEstimator{},
				report.NewConsoleReporter(cmd.OutOrStdout()),
				p,
			)
		},
	}

	def := estimation.ExampleParams()
	rootCmd.Flags().Int(dataWidthFlag, def.DataWidth,
		"Number of data bits per cache line.")
	rootCmd.Flags().Int(tagWidthFlag, def.TagWidth,
		"Number of tag bits per cache line.")
	rootCmd.Flags().Int(cacheSizeFlag, def.CacheSize,
		"Number of cache lines.")
	rootCmd.Flags().Float64(memAccessDelayFlag, float64(def.MemAccessDelay),
		"Time units to serve a read miss from memory.")
	rootCmd.Flags().Float64(singleGateDelayFlag, float64(def.SingleGateDelay),
		"Time units for one gate to propagate.")

	return rootCmd
}

func paramsFromFlags(cmd *cobra.Command) (estimation.Params, error) {
	flags := cmd.Flags()

	dataWidth, err := flags.GetInt(dataWidthFlag)
	if err != nil {
		return estimation.Params{}, err
	}

	tagWidth, err := flags.GetInt(tagWidthFlag)
	if err != nil {
		return estimation.Params{}, err
	}

	cacheSize, err := flags.GetInt(cacheSizeFlag)
	if err != nil {
		return estimation.Params{}, err
	}

	memAccessDelay, err := flags.GetFloat64(memAccessDelayFlag)
	if err != nil {
		return estimation.Params{}, err
	}

	singleGateDelay, err := flags.GetFloat64(singleGateDelayFlag)
	if err != nil {
		return estimation.Params{}, err
	}

	p := estimation.MakeBuilder().
		WithDataWidth(dataWidth).
		WithTagWidth(tagWidth).
		WithCacheSize(cacheSize).
		WithMemAccessDelay(estimation.Delay(memAccessDelay)).
		WithSingleGateDelay(estimation.Delay(singleGateDelay)).
		Build()

	return p, nil
}

// Run estimates the cache described by p once and reports the result.
func Run(
	est estimation.Estimator,
	rep report.Reporter,
	p estimation.Params,
) error {
	m := est.Estimate(p)

	return rep.Report(m)
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
