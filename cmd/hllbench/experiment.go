package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	hll "github.com/probekit/go-hll"
	"github.com/probekit/go-hll/internal/experiment"
)

var (
	growthOut       string
	growthPrecision int
	growthRuns      int
	growthStandard  bool
)

var experimentCmd = &cobra.Command{
	Use:   "experiment",
	Short: "run the growth experiment and write a CSV report",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := experiment.DefaultOptions()
		opts.Seed = flagSeed
		opts.Precision = growthPrecision
		opts.Runs = growthRuns
		if growthStandard {
			opts.Storage = hll.StorageStandard
		}

		rows, err := experiment.Growth(opts, newHasher())
		if err != nil {
			return err
		}

		f, err := os.Create(growthOut)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := experiment.WriteCSV(f, rows); err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"rows": len(rows),
			"path": growthOut,
		}).Info("experiment report written")
		return nil
	},
}

func init() {
	experimentCmd.Flags().StringVar(&growthOut, "out", "experiment.csv", "CSV report path")
	experimentCmd.Flags().IntVar(&growthPrecision, "precision", 8, "sketch precision")
	experimentCmd.Flags().IntVar(&growthRuns, "runs", 5, "independent streams per size")
	experimentCmd.Flags().BoolVar(&growthStandard, "standard", false, "use the standard register layout instead of packed")
	rootCmd.AddCommand(experimentCmd)
}
