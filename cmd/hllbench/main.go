// hllbench runs the experiment harness for the go-hll sketches: hash
// quality checks, precision sweeps, growth experiments with CSV reports,
// reference comparisons and memory accounting.
package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	hll "github.com/probekit/go-hll"
)

var (
	flagSeed    int64
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "hllbench",
	Short: "experiments for the go-hll cardinality sketch",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 42, "stream generator seed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// newHasher builds the hasher shared by every subcommand. The seed knob
// here is the hasher's, distinct from the stream seed, and currently has
// no effect on hash values.
func newHasher() hll.Hasher {
	return hll.NewPolynomialHasher(0)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
