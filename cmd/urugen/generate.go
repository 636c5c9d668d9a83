// Generate command for the urugen CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/urugen/internal/datagen"
	"github.com/mesh-intelligence/urugen/pkg/types"
)

var (
	flagDataDir string
	flagSeed    int64
	flagConfig  string
	flagShops   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the registry and all shop databases",
	Long: `Generate writes registry.db plus one shop database per shop into
the data directory. Row counts come from the built-in profile, optionally
overridden by a YAML config file; --shops overrides the shop count on top
of that. The same seed always produces the same databases.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := loadCounts(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("shops") {
			counts.Shops = flagShops
		}

		cfg := types.Config{
			DataDir: flagDataDir,
			Seed:    flagSeed,
			Counts:  counts,
		}
		g, err := datagen.New(cfg)
		if err != nil {
			return fmt.Errorf("configure generator: %w", err)
		}
		return g.Run()
	},
}

func init() {
	generateCmd.Flags().StringVar(&flagDataDir, "data-dir", "", "output directory for the generated databases")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", types.DefaultSeed, "random seed")
	generateCmd.Flags().StringVar(&flagConfig, "config", "", "YAML file overriding row counts")
	generateCmd.Flags().IntVar(&flagShops, "shops", 0, "number of shops (overrides config)")
	generateCmd.MarkFlagRequired("data-dir")
}
