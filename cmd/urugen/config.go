// Config loading for the urugen CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/urugen/pkg/types"
)

// loadCounts returns the default row counts, overridden by any keys present
// in the YAML config file. An empty path means defaults only.
func loadCounts(path string) (types.Counts, error) {
	counts := types.DefaultCounts()
	if path == "" {
		return counts, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return counts, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(&counts); err != nil {
		return counts, fmt.Errorf("parse config: %w", err)
	}
	return counts, nil
}
