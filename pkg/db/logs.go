package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lokasync/cloudota/pkg/models"
)

// recencySort orders records most-recently-updated first. The remaining keys
// follow the natural key's field order and break timestamp ties so pagination
// stays stable across calls.
var recencySort = bson.D{
	{Key: "latest_updated", Value: -1},
	{Key: "session_id", Value: 1},
	{Key: "node_mac", Value: 1},
	{Key: "node_codename", Value: 1},
	{Key: "firmware_version", Value: 1},
}

func (d *DB) UpsertLog(
	ctx context.Context,
	key models.NaturalKey,
	update *models.LogUpdate,
	now time.Time,
) (*models.OTALog, error) {
	filter := keyFilter(key)

	var existing models.OTALog

	err := d.logs.FindOne(ctx, filter).Decode(&existing)

	switch {
	case err == nil:
		return d.mergeLog(ctx, filter, update, now)
	case errors.Is(err, mongo.ErrNoDocuments):
		return d.insertLog(ctx, key, update, now)
	default:
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

func (d *DB) mergeLog(
	ctx context.Context,
	filter bson.M,
	update *models.LogUpdate,
	now time.Time,
) (*models.OTALog, error) {
	if _, err := d.logs.UpdateOne(ctx, filter, bson.M{"$set": updateFields(update, now)}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var merged models.OTALog

	if err := d.logs.FindOne(ctx, filter).Decode(&merged); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return &merged, nil
}

func (d *DB) insertLog(
	ctx context.Context,
	key models.NaturalKey,
	update *models.LogUpdate,
	now time.Time,
) (*models.OTALog, error) {
	record := newLogRecord(key, update, now)

	result, err := d.logs.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateRecord, err)
		}

		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}

	d.logger.Debug().
		Str("session_id", key.SessionID).
		Str("node_codename", key.NodeCodename).
		Msg("Created session record")

	return record, nil
}

func (d *DB) ListLogs(
	ctx context.Context,
	filter *models.LogFilter,
	skip, limit int,
) ([]*models.OTALog, error) {
	opts := options.Find().
		SetSort(recencySort).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := d.logs.Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return decodeLogs(ctx, cursor)
}

func (d *DB) CountLogs(ctx context.Context, filter *models.LogFilter) (int64, error) {
	count, err := d.logs.CountDocuments(ctx, filterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return count, nil
}

func (d *DB) GetFilterOptions(ctx context.Context) (*models.LogFilterOptions, error) {
	locations, err := d.distinctStrings(ctx, "node_location")
	if err != nil {
		return nil, err
	}

	types, err := d.distinctStrings(ctx, "node_type")
	if err != nil {
		return nil, err
	}

	statuses, err := d.distinctStrings(ctx, "flash_status")
	if err != nil {
		return nil, err
	}

	return &models.LogFilterOptions{
		NodeLocations: locations,
		NodeTypes:     types,
		FlashStatuses: statuses,
	}, nil
}

// latestPerNodePipeline reduces the collection to the most-recently-updated
// record per node codename, then re-sorts the reduced set by recency for
// pagination. The per-group sort decides which record $first keeps: newest
// wins, identical timestamps fall back to natural key field order.
func latestPerNodePipeline(filter *models.LogFilter, skip, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filterQuery(filter)}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "node_codename", Value: 1},
			{Key: "latest_updated", Value: -1},
			{Key: "session_id", Value: 1},
			{Key: "node_mac", Value: 1},
			{Key: "firmware_version", Value: 1},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$node_codename"},
			{Key: "doc", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$doc"}}}},
		bson.D{{Key: "$sort", Value: recencySort}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
}

func distinctNodesPipeline(filter *models.LogFilter) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: filterQuery(filter)}},
		bson.D{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$node_codename"}}}},
		bson.D{{Key: "$count", Value: "count"}},
	}
}

func (d *DB) ListLatestPerNode(
	ctx context.Context,
	filter *models.LogFilter,
	skip, limit int,
) ([]*models.OTALog, error) {
	cursor, err := d.logs.Aggregate(ctx, latestPerNodePipeline(filter, skip, limit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return decodeLogs(ctx, cursor)
}

func (d *DB) CountDistinctNodes(ctx context.Context, filter *models.LogFilter) (int64, error) {
	cursor, err := d.logs.Aggregate(ctx, distinctNodesPipeline(filter))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	defer func() { _ = cursor.Close(ctx) }()

	var result []struct {
		Count int64 `bson:"count"`
	}

	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if len(result) == 0 {
		return 0, nil
	}

	return result[0].Count, nil
}

func (d *DB) GetLogBySessionID(ctx context.Context, sessionID string) (*models.OTALog, error) {
	return d.findOne(ctx, bson.M{"session_id": sessionID})
}

func (d *DB) GetLogByKey(ctx context.Context, key models.NaturalKey) (*models.OTALog, error) {
	return d.findOne(ctx, keyFilter(key))
}

func (d *DB) ListVersions(ctx context.Context, nodeCodename string) ([]*models.OTALog, error) {
	opts := options.Find().SetSort(recencySort)

	cursor, err := d.logs.Find(ctx, bson.M{"node_codename": nodeCodename}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return decodeLogs(ctx, cursor)
}

func (d *DB) NodeExists(ctx context.Context, nodeCodename string) (bool, error) {
	err := d.logs.FindOne(ctx, bson.M{"node_codename": nodeCodename}).Err()

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

func (d *DB) DeleteLogs(ctx context.Context, nodeCodename, firmwareVersion string) (int64, error) {
	filter := bson.M{"node_codename": nodeCodename}
	if firmwareVersion != "" {
		filter["firmware_version"] = firmwareVersion
	}

	result, err := d.logs.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return result.DeletedCount, nil
}

func (d *DB) findOne(ctx context.Context, filter bson.M) (*models.OTALog, error) {
	var record models.OTALog

	err := d.logs.FindOne(ctx, filter).Decode(&record)

	switch {
	case err == nil:
		return &record, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}

func (d *DB) distinctStrings(ctx context.Context, field string) ([]string, error) {
	values, err := d.logs.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	result := make([]string, 0, len(values))

	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}

	sort.Strings(result)

	return result, nil
}

func decodeLogs(ctx context.Context, cursor *mongo.Cursor) ([]*models.OTALog, error) {
	defer func() { _ = cursor.Close(ctx) }()

	logs := make([]*models.OTALog, 0)

	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return logs, nil
}
