// Command revlife is the external-collaborator CLI of spec §1: it
// reads a target grid, drives internal/engine.Reduce, and prints the
// resulting predecessors. None of its flag parsing, logging, or
// output formatting is part of the core.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "revlife",
		Short: "revlife",
		Long:  `revlife computes predecessor grids for Conway's Game of Life via SAT reduction.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.AddCommand(newSolveCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
