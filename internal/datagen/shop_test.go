package datagen

import (
	"database/sql"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/urugen/internal/paths"
	"github.com/mesh-intelligence/urugen/pkg/types"
)

// fixtureShopIDs returns the shop ids recorded in the registry, in creation
// order. Every shop database file is named after one of these.
func fixtureShopIDs(t *testing.T, dir string) []string {
	t.Helper()
	db := openFixtureDB(t, paths.RegistryDB(dir))
	rows, err := db.Query("SELECT id FROM shops ORDER BY rowid")
	require.NoError(t, err)
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

func openFirstShopDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dir := fixture(t)
	ids := fixtureShopIDs(t, dir)
	require.NotEmpty(t, ids)
	return openFixtureDB(t, paths.ShopDB(dir, ids[0])), ids[0]
}

func TestShopDatabaseFilesExist(t *testing.T) {
	dir := fixture(t)
	ids := fixtureShopIDs(t, dir)
	require.Len(t, ids, 3)
	for _, id := range ids {
		_, err := os.Stat(paths.ShopDB(dir, id))
		assert.NoError(t, err, "missing database for shop %s", id)
	}
}

func TestShopConfigSingleton(t *testing.T) {
	db, shopID := openFirstShopDB(t)

	assert.Equal(t, 1, countRows(t, db, "shop_config"))
	var got string
	require.NoError(t,
		db.QueryRow("SELECT shop_id FROM shop_config").Scan(&got))
	assert.Equal(t, shopID, got, "config row must name the owning shop")
}

func TestShopRowCounts(t *testing.T) {
	db, _ := openFirstShopDB(t)

	exact := map[string]int{
		"brands":             10,
		"categories":         20,
		"customer_groups":    5,
		"customers":          100,
		"products":           150,
		"locations":          5,
		"customer_addresses": 50,
		"inventory_levels":   300,
		"transactions":       200,
		"orders":             150,
		"checkouts":          50,
		"pos_sessions":       20,
		"inquiries":          30,
		"payments":           250,
		"shipments":          100,
		"reviews":            80,
		"refunds":            25,
	}
	for table, want := range exact {
		assert.Equal(t, want, countRows(t, db, table), "table %s", table)
	}

	// Child tables draw 1..k rows per parent.
	assert.GreaterOrEqual(t, countRows(t, db, "order_items"), 150)
	assert.LessOrEqual(t, countRows(t, db, "order_items"), 450)
	assert.GreaterOrEqual(t, countRows(t, db, "transaction_items"), 200)
	assert.LessOrEqual(t, countRows(t, db, "transaction_items"), 600)
	assert.GreaterOrEqual(t, countRows(t, db, "inquiry_messages"), 30)
	assert.LessOrEqual(t, countRows(t, db, "inquiry_messages"), 120)
	assert.GreaterOrEqual(t, countRows(t, db, "shipment_items"), 100)
	assert.LessOrEqual(t, countRows(t, db, "shipment_items"), 300)
	assert.GreaterOrEqual(t, countRows(t, db, "shipment_events"), 100)
	assert.LessOrEqual(t, countRows(t, db, "shipment_events"), 300)

	// Sampled junctions tolerate duplicate draws.
	memberships := countRows(t, db, "customer_group_memberships")
	assert.GreaterOrEqual(t, memberships, 1)
	assert.LessOrEqual(t, memberships, 30)
	assert.LessOrEqual(t, countRows(t, db, "product_categories"), 105)
	assert.LessOrEqual(t, countRows(t, db, "inventory_movements"), 100)
}

func TestShopProductsNullableReferences(t *testing.T) {
	db, _ := openFirstShopDB(t)

	var nullCategories, nullBrands int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM products WHERE category_id IS NULL").Scan(&nullCategories))
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM products WHERE brand_id IS NULL").Scan(&nullBrands))

	// Roughly 10% of products have no category and 20% no brand. The bands
	// are wide enough to hold for any seed.
	assert.GreaterOrEqual(t, nullCategories, 1)
	assert.LessOrEqual(t, nullCategories, 45)
	assert.GreaterOrEqual(t, nullBrands, 5)
	assert.LessOrEqual(t, nullBrands, 70)
}

func TestShopRefundAmounts(t *testing.T) {
	db, _ := openFirstShopDB(t)

	var minAmount, maxAmount float64
	require.NoError(t, db.QueryRow(
		"SELECT MIN(amount), MAX(amount) FROM refunds").Scan(&minAmount, &maxAmount))
	assert.Greater(t, minAmount, 0.0)
	assert.LessOrEqual(t, maxAmount, 200.0)
}

func TestShopInventoryMovementsInboundOnly(t *testing.T) {
	db, _ := openFirstShopDB(t)

	var outbound int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM inventory_movements WHERE type != 'in'").Scan(&outbound))
	assert.Zero(t, outbound)
}

func TestShipmentEventTimesNeverIncrease(t *testing.T) {
	db, _ := openFirstShopDB(t)

	rows, err := db.Query(`SELECT shipment_id, happened_at FROM shipment_events
		ORDER BY shipment_id, rowid`)
	require.NoError(t, err)
	defer rows.Close()

	prevShipment, prevTime := "", ""
	for rows.Next() {
		var shipmentID, happenedAt string
		require.NoError(t, rows.Scan(&shipmentID, &happenedAt))
		if shipmentID == prevShipment {
			// The timestamp layout sorts lexicographically.
			assert.LessOrEqual(t, happenedAt, prevTime,
				"shipment %s event time increased", shipmentID)
		}
		prevShipment, prevTime = shipmentID, happenedAt
	}
	require.NoError(t, rows.Err())
}

func TestShopForeignKeysHold(t *testing.T) {
	db, _ := openFirstShopDB(t)

	rows, err := db.Query("PRAGMA foreign_key_check")
	require.NoError(t, err)
	defer rows.Close()
	assert.False(t, rows.Next(), "shop database has dangling references")
	require.NoError(t, rows.Err())
}

func TestShopTablesCarryNoShopColumn(t *testing.T) {
	db, _ := openFirstShopDB(t)

	rows, err := db.Query(`SELECT m.name, p.name
		FROM sqlite_master m, pragma_table_info(m.name) p
		WHERE m.type = 'table' AND m.name != 'shop_config' AND p.name = 'shop_id'`)
	require.NoError(t, err)
	defer rows.Close()
	assert.False(t, rows.Next(), "business tables must not reference a shop id")
	require.NoError(t, rows.Err())
}

func TestGeneratorRejectsInvalidConfig(t *testing.T) {
	_, err := NewAt(types.Config{}, testNow)
	assert.Error(t, err)
}
