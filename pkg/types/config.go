// Package types defines the generation configuration and standard errors for
// the urugen synthetic data generator.
package types

import "errors"

// DefaultSeed is used when no --seed flag is given.
const DefaultSeed int64 = 42

// Config validation errors.
var (
	ErrDataDirEmpty  = errors.New("data dir must not be empty")
	ErrCountNegative = errors.New("entity counts must not be negative")
	ErrNoShops       = errors.New("shop count must be at least 1")
)

// Counts holds the nominal row counts per entity kind. Junction and child
// entities derive their counts from parent identifier sets and are not listed.
type Counts struct {
	Shops           int `mapstructure:"shops" yaml:"shops"`
	Users           int `mapstructure:"users" yaml:"users"`
	Roles           int `mapstructure:"roles" yaml:"roles"`
	Brands          int `mapstructure:"brands" yaml:"brands"`
	Categories      int `mapstructure:"categories" yaml:"categories"`
	Products        int `mapstructure:"products" yaml:"products"`
	Locations       int `mapstructure:"locations" yaml:"locations"`
	Customers       int `mapstructure:"customers" yaml:"customers"`
	CustomerGroups  int `mapstructure:"customer_groups" yaml:"customer_groups"`
	Transactions    int `mapstructure:"transactions" yaml:"transactions"`
	Orders          int `mapstructure:"orders" yaml:"orders"`
	Payments        int `mapstructure:"payments" yaml:"payments"`
	Checkouts       int `mapstructure:"checkouts" yaml:"checkouts"`
	Inquiries       int `mapstructure:"inquiries" yaml:"inquiries"`
	Reviews         int `mapstructure:"reviews" yaml:"reviews"`
	InventoryLevels int `mapstructure:"inventory_levels" yaml:"inventory_levels"`
	Shipments       int `mapstructure:"shipments" yaml:"shipments"`
	PosSessions     int `mapstructure:"pos_sessions" yaml:"pos_sessions"`
}

// DefaultCounts returns the stock generation profile.
func DefaultCounts() Counts {
	return Counts{
		Shops:           3,
		Users:           50,
		Roles:           5,
		Brands:          10,
		Categories:      20,
		Products:        150,
		Locations:       5,
		Customers:       100,
		CustomerGroups:  5,
		Transactions:    200,
		Orders:          150,
		Payments:        250,
		Checkouts:       50,
		Inquiries:       30,
		Reviews:         80,
		InventoryLevels: 300,
		Shipments:       100,
		PosSessions:     20,
	}
}

// Config holds everything a generation run needs: the output directory, the
// seed for the deterministic value source, and the entity counts.
type Config struct {
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
	Seed    int64  `mapstructure:"seed" yaml:"seed"`
	Counts  Counts `mapstructure:"counts" yaml:"counts"`
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.Counts.Shops < 1 {
		return ErrNoShops
	}
	for _, n := range []int{
		c.Counts.Users, c.Counts.Roles, c.Counts.Brands, c.Counts.Categories,
		c.Counts.Products, c.Counts.Locations, c.Counts.Customers,
		c.Counts.CustomerGroups, c.Counts.Transactions, c.Counts.Orders,
		c.Counts.Payments, c.Counts.Checkouts, c.Counts.Inquiries,
		c.Counts.Reviews, c.Counts.InventoryLevels, c.Counts.Shipments,
		c.Counts.PosSessions,
	} {
		if n < 0 {
			return ErrCountNegative
		}
	}
	return nil
}
