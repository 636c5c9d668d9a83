package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/urugen/internal/paths"
	"github.com/mesh-intelligence/urugen/pkg/types"
)

// Summaries must report what the committed store holds, not what the
// generators counted in memory.
func TestSummarizeReadsCommittedCounts(t *testing.T) {
	dir := fixture(t)
	db := openFixtureDB(t, paths.RegistryDB(dir))

	g, err := NewAt(types.Config{
		DataDir: dir,
		Seed:    types.DefaultSeed,
		Counts:  types.DefaultCounts(),
	}, testNow)
	require.NoError(t, err)

	counts, err := summarize(db, g.registryPipeline())
	require.NoError(t, err)
	require.Len(t, counts, len(g.registryPipeline()))

	byTable := map[string]int{}
	for _, c := range counts {
		byTable[c.table] = c.rows
	}
	assert.Equal(t, 3, byTable["shops"])
	assert.Equal(t, 50, byTable["users"])
	assert.Equal(t, 5, byTable["roles"])
	assert.Equal(t, 20, byTable["user_sessions"])
}

func TestSummarizeUnknownTable(t *testing.T) {
	dir := fixture(t)
	db := openFixtureDB(t, paths.RegistryDB(dir))

	_, err := summarize(db, []pipelineStep{{name: "no_such_table"}})
	assert.Error(t, err)
}
