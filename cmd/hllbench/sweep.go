package main

import (
	"fmt"

	"github.com/spf13/cobra"

	hll "github.com/probekit/go-hll"
	"github.com/probekit/go-hll/internal/experiment"
	"github.com/probekit/go-hll/internal/stream"
)

var (
	sweepSize   int
	sweepMin    int
	sweepMax    int
	sweepPacked bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "sweep precisions over one stream and report estimate accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		elements := stream.NewGenerator(flagSeed).Strings(sweepSize)

		storage := hll.StorageStandard
		if sweepPacked {
			storage = hll.StoragePacked
		}

		results, err := experiment.PrecisionSweep(elements, sweepMin, sweepMax, newHasher(), storage)
		if err != nil {
			return err
		}

		for _, r := range results {
			fmt.Printf("B=%d m=%d real=%d estimate=%d error=%.2f%%\n",
				r.Precision, r.Registers, r.Real, int(r.Estimate), r.ErrorPercent)
		}
		return nil
	},
}

func init() {
	sweepCmd.Flags().IntVar(&sweepSize, "size", 50000, "stream length")
	sweepCmd.Flags().IntVar(&sweepMin, "min-precision", 4, "first precision to test")
	sweepCmd.Flags().IntVar(&sweepMax, "max-precision", 12, "last precision to test")
	sweepCmd.Flags().BoolVar(&sweepPacked, "packed", false, "use the packed register layout")
	rootCmd.AddCommand(sweepCmd)
}
