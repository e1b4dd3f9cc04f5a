// Command bizarromath-bench exercises the chunk-width auto-tune
// benchmark and the buffer pool's metrics from outside the core package,
// giving both a concrete external interface the way oisee-z80-optimizer
// wires cobra as its command surface.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/SolaceHarmony/BizarroMath"
)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:   "bizarromath-bench",
		Short: "Run the BizarroMath chunk-width auto-tune and a pool-metrics smoke scenario",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		bizarromath.SetLogger(zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger())

		start := time.Now()
		a, err := bizarromath.FromDecimal("999999999999999999999999999999999999")
		if err != nil {
			return err
		}
		b, err := bizarromath.FromDecimal("1000000000000000000000000000000000001")
		if err != nil {
			return err
		}
		product, err := a.Mul(b)
		if err != nil {
			return err
		}
		fmt.Printf("auto-tune, parse and multiply took %s\n", time.Since(start))
		fmt.Printf("product = %s\n", product.String())

		stats := bizarromath.DefaultPool().Stats()
		fmt.Printf("pool: hits=%d misses=%d peak_memory=%d\n",
			stats.BlockHits, stats.CacheMisses, stats.PeakMemory)
		return nil
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
