package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probekit/go-hll/internal/hashcheck"
	"github.com/probekit/go-hll/internal/stream"
)

var (
	hashcheckSize    int
	hashcheckBuckets int
)

var hashcheckCmd = &cobra.Command{
	Use:   "hashcheck",
	Short: "chi-square bucket-uniformity test of the hash function",
	RunE: func(cmd *cobra.Command, args []string) error {
		elements := stream.NewGenerator(flagSeed).Strings(hashcheckSize)
		chi2 := hashcheck.ChiSquare(elements, newHasher(), hashcheckBuckets)
		fmt.Printf("chi2=%.2f over %d buckets (%d elements)\n", chi2, hashcheckBuckets, hashcheckSize)
		return nil
	},
}

func init() {
	hashcheckCmd.Flags().IntVar(&hashcheckSize, "size", 10000, "stream length")
	hashcheckCmd.Flags().IntVar(&hashcheckBuckets, "buckets", hashcheck.DefaultBuckets, "bucket count")
	rootCmd.AddCommand(hashcheckCmd)
}
