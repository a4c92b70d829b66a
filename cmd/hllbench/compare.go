package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probekit/go-hll/internal/experiment"
)

var (
	compareSizes     []int
	comparePrecision int
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "compare the sketch against a 64-bit reference implementation",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := experiment.Compare(compareSizes, flagSeed, comparePrecision, newHasher())
		if err != nil {
			return err
		}

		for _, r := range results {
			fmt.Printf("n=%d real=%d estimate=%d (%.2f%%) reference=%d (%.2f%%)\n",
				r.StreamSize, r.Real, int(r.Estimate), r.ErrorPercent,
				r.Reference, r.ReferenceErrorPct)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().IntSliceVar(&compareSizes, "sizes", []int{10000, 50000, 100000}, "stream lengths")
	compareCmd.Flags().IntVar(&comparePrecision, "precision", 8, "precision of the sketch under test")
	rootCmd.AddCommand(compareCmd)
}
