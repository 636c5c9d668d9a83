// Root command for the urugen CLI.
package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "urugen",
	Short: "urugen generates deterministic multi-database test datasets",
	Long: `urugen builds a complete synthetic dataset for the split-database
storefront layout: one registry database holding shops, users and roles,
plus one fully populated database per shop. Output is deterministic for a
given seed.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
}
