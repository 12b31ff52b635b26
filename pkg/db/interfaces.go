// Package db implements the session record store on MongoDB.
package db

import (
	"context"
	"time"

	"github.com/lokasync/cloudota/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/lokasync/cloudota/pkg/db Service

// Service represents all store operations shared by the ingest and query
// paths. The underlying client is safe for concurrent use; both paths hold
// the same Service for the life of the process.
type Service interface {
	Close(ctx context.Context) error

	// Ingest path.

	// UpsertLog folds a field-update set into the session record identified
	// by key, creating the record with explicit null progress fields when no
	// record exists yet. The find-then-create-or-merge sequence is not atomic;
	// concurrent first messages for one new identity can produce duplicate
	// records (accepted, matches the upstream data).
	UpsertLog(ctx context.Context, key models.NaturalKey, update *models.LogUpdate, now time.Time) (*models.OTALog, error)

	// Query path.

	ListLogs(ctx context.Context, filter *models.LogFilter, skip, limit int) ([]*models.OTALog, error)
	CountLogs(ctx context.Context, filter *models.LogFilter) (int64, error)
	GetFilterOptions(ctx context.Context) (*models.LogFilterOptions, error)
	ListLatestPerNode(ctx context.Context, filter *models.LogFilter, skip, limit int) ([]*models.OTALog, error)
	CountDistinctNodes(ctx context.Context, filter *models.LogFilter) (int64, error)
	GetLogBySessionID(ctx context.Context, sessionID string) (*models.OTALog, error)
	GetLogByKey(ctx context.Context, key models.NaturalKey) (*models.OTALog, error)
	ListVersions(ctx context.Context, nodeCodename string) ([]*models.OTALog, error)
	NodeExists(ctx context.Context, nodeCodename string) (bool, error)
	DeleteLogs(ctx context.Context, nodeCodename, firmwareVersion string) (int64, error)
}
