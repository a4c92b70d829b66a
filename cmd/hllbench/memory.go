package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probekit/go-hll/internal/experiment"
)

var memoryPrecision int

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "compare the register footprint of both storage layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := experiment.Memory(memoryPrecision, newHasher())
		if err != nil {
			return err
		}

		fmt.Printf("precision=%d registers=%d\n", c.Precision, c.Registers)
		fmt.Printf("standard: %d bytes\n", c.StandardBytes)
		fmt.Printf("packed:   %d bytes\n", c.PackedBytes)
		fmt.Printf("saved:    %d bytes (%.0f%%)\n", c.SavedBytes, c.SavedPercent)
		return nil
	},
}

func init() {
	memoryCmd.Flags().IntVar(&memoryPrecision, "precision", 8, "sketch precision")
	rootCmd.AddCommand(memoryCmd)
}
