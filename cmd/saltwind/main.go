// Package main is the entry point for the saltwind CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "saltwind",
	Short: "Saltwind Coast RPG core",
	Long:  `Saltwind drives the Saltwind Coast game core: a headless play session over stdin, and world-generation tooling.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(worldgenCmd)
}
