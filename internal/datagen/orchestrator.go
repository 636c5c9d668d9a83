package datagen

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/mesh-intelligence/urugen/internal/paths"
	"github.com/mesh-intelligence/urugen/internal/store"
	"github.com/mesh-intelligence/urugen/pkg/types"
)

// pipelineStep is one table generator. fn returns the number of rows it
// inserted; steps run in pipeline order inside a single transaction so
// partially generated databases are never left behind.
type pipelineStep struct {
	name string
	fn   func(store.Execer) (int, error)
}

// Generator produces the full dataset: one registry database plus one
// database per shop, all derived from a single seed.
type Generator struct {
	cfg   types.Config
	vals  *ValueSource
	state *IDState
}

// New builds a Generator whose reference time is the wall clock.
func New(cfg types.Config) (*Generator, error) {
	return NewAt(cfg, time.Now())
}

// NewAt builds a Generator with an explicit reference time. Fixing both the
// seed and the reference time makes output byte-reproducible.
func NewAt(cfg types.Config, now time.Time) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:   cfg,
		vals:  NewValueSource(cfg.Seed, now),
		state: NewIDState(),
	}, nil
}

// Run generates the registry database and then every shop database, in shop
// order. The whole run draws from one random stream, so the same seed and
// reference time reproduce every database.
func (g *Generator) Run() error {
	if err := paths.EnsureLayout(g.cfg.DataDir); err != nil {
		return fmt.Errorf("prepare data dir: %w", err)
	}

	color.Cyan("Generating registry database (seed %d)", g.cfg.Seed)
	if err := g.generateRegistry(paths.RegistryDB(g.cfg.DataDir)); err != nil {
		return fmt.Errorf("registry: %w", err)
	}

	for i, shopID := range g.state.Shops {
		color.Cyan("Generating shop database %d/%d", i+1, len(g.state.Shops))
		g.state.ResetShop()
		if err := g.generateShop(paths.ShopDB(g.cfg.DataDir, shopID), shopID); err != nil {
			return fmt.Errorf("shop %s: %w", shopID, err)
		}
	}

	color.Green("Done: registry + %d shop databases under %s",
		len(g.state.Shops), g.cfg.DataDir)
	return nil
}

func (g *Generator) generateRegistry(dbPath string) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.ApplySchema(db, store.Migrations(), store.RegistrySchema); err != nil {
		return err
	}
	return g.runPipeline(db, g.registryPipeline(), nil)
}

func (g *Generator) generateShop(dbPath, shopID string) error {
	db, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.ApplySchema(db, store.Migrations(), store.ShopSchema); err != nil {
		return err
	}
	return g.runPipeline(db, g.shopPipeline(), func(tx *sql.Tx) error {
		// The config singleton is the only row in a shop database that knows
		// which shop owns the file.
		_, err := tx.Exec(`INSERT INTO shop_config (id, shop_id, initialized_at)
			VALUES (?, ?, ?)`,
			g.vals.UUID(), shopID, g.vals.Now().Format(timestampLayout))
		if err != nil {
			return fmt.Errorf("insert shop config: %w", err)
		}
		return nil
	})
}

// runPipeline executes setup (if any) and every step inside one transaction,
// then prints a summary read back from the committed store.
func (g *Generator) runPipeline(db *sql.DB, steps []pipelineStep, setup func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if setup != nil {
		if err := setup(tx); err != nil {
			return err
		}
	}
	for _, step := range steps {
		if _, err := step.fn(tx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	counts, err := summarize(db, steps)
	if err != nil {
		return err
	}
	for _, c := range counts {
		fmt.Printf("  %-28s %s\n", c.table, color.GreenString("%d rows", c.rows))
	}
	return nil
}

// tableCount pairs a table name with its committed row count.
type tableCount struct {
	table string
	rows  int
}

// summarize reads the row count of every pipeline table back from the store,
// so summaries report what was actually committed rather than what the
// generators believe they wrote.
func summarize(db *sql.DB, steps []pipelineStep) ([]tableCount, error) {
	counts := make([]tableCount, 0, len(steps))
	for _, step := range steps {
		n, err := store.CountRows(db, step.name)
		if err != nil {
			return nil, err
		}
		counts = append(counts, tableCount{table: step.name, rows: n})
	}
	return counts, nil
}
