package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lokasync/cloudota/pkg/models"
)

// stageDoc pulls the value of a single-operator pipeline stage, failing if
// the stage is not the expected operator.
func stageDoc(t *testing.T, stage bson.D, operator string) interface{} {
	t.Helper()

	require.Len(t, stage, 1)
	require.Equal(t, operator, stage[0].Key)

	return stage[0].Value
}

func TestRecencySortKeys(t *testing.T) {
	require.Len(t, recencySort, 5)

	assert.Equal(t, bson.E{Key: "latest_updated", Value: -1}, recencySort[0])

	// Tie-break keys follow the natural key's field order, all ascending.
	tieBreak := []string{"session_id", "node_mac", "node_codename", "firmware_version"}
	for i, key := range tieBreak {
		assert.Equal(t, bson.E{Key: key, Value: 1}, recencySort[i+1])
	}
}

func TestLatestPerNodePipeline(t *testing.T) {
	filter := &models.LogFilter{NodeLocation: "Depok"}

	pipeline := latestPerNodePipeline(filter, 20, 10)
	require.Len(t, pipeline, 7)

	assert.Equal(t, filterQuery(filter), stageDoc(t, pipeline[0], "$match"))

	// The per-group sort must rank newest first within each codename so
	// $first keeps the winning record, with timestamp ties broken by the
	// natural key's field order.
	assert.Equal(t, bson.D{
		{Key: "node_codename", Value: 1},
		{Key: "latest_updated", Value: -1},
		{Key: "session_id", Value: 1},
		{Key: "node_mac", Value: 1},
		{Key: "firmware_version", Value: 1},
	}, stageDoc(t, pipeline[1], "$sort"))

	assert.Equal(t, bson.D{
		{Key: "_id", Value: "$node_codename"},
		{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
	}, stageDoc(t, pipeline[2], "$group"))

	assert.Equal(t,
		bson.D{{Key: "newRoot", Value: "$doc"}},
		stageDoc(t, pipeline[3], "$replaceRoot"))

	// The reduced set is re-sorted by plain recency for pagination.
	assert.Equal(t, recencySort, stageDoc(t, pipeline[4], "$sort"))
	assert.Equal(t, 20, stageDoc(t, pipeline[5], "$skip"))
	assert.Equal(t, 10, stageDoc(t, pipeline[6], "$limit"))
}

func TestLatestPerNodePipelineGroupSortFieldsExist(t *testing.T) {
	// Every field the pipeline sorts or groups on must be a real bson tag on
	// the record; a typo here would silently break grouping determinism.
	known := map[string]bool{
		"session_id": true, "node_mac": true, "node_location": true,
		"node_type": true, "node_id": true, "node_codename": true,
		"firmware_version": true, "latest_updated": true,
	}

	pipeline := latestPerNodePipeline(nil, 0, 10)

	groupSort, ok := stageDoc(t, pipeline[1], "$sort").(bson.D)
	require.True(t, ok)

	for _, e := range groupSort {
		assert.True(t, known[e.Key], "unknown sort field %q", e.Key)
	}

	for _, e := range recencySort {
		assert.True(t, known[e.Key], "unknown sort field %q", e.Key)
	}
}

func TestDistinctNodesPipeline(t *testing.T) {
	pipeline := distinctNodesPipeline(nil)
	require.Len(t, pipeline, 3)

	assert.Equal(t, bson.M{}, stageDoc(t, pipeline[0], "$match"))
	assert.Equal(t,
		bson.D{{Key: "_id", Value: "$node_codename"}},
		stageDoc(t, pipeline[1], "$group"))
	assert.Equal(t, "count", stageDoc(t, pipeline[2], "$count"))
}
