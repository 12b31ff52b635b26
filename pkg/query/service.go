// Package query serves read and maintenance operations over stored session
// records.
package query

import (
	"context"
	"fmt"

	"github.com/lokasync/cloudota/pkg/db"
	"github.com/lokasync/cloudota/pkg/logger"
	"github.com/lokasync/cloudota/pkg/models"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Service answers log queries against the store. It holds the same db.Service
// the ingest path writes through.
type Service struct {
	db     db.Service
	logger logger.Logger
}

func NewService(dbService db.Service, log logger.Logger) *Service {
	return &Service{db: dbService, logger: log}
}

func normalizePaging(page, pageSize int) (int, int, error) {
	if page < 1 {
		return 0, 0, ErrInvalidPage
	}

	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	if pageSize < 0 {
		return 0, 0, ErrInvalidPageSize
	}

	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize, nil
}

// validateFilter rejects a flash-status value outside the known status set,
// so a typoed status reads as a client error rather than an empty result.
func validateFilter(filter *models.LogFilter) error {
	if filter == nil || filter.FlashStatus == "" {
		return nil
	}

	for _, status := range models.AllStatuses() {
		if filter.FlashStatus == status {
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidStatus, filter.FlashStatus)
}

// totalPages is a ceiling division that never reports zero pages: an empty
// result set is still "page 1 of 1" to clients.
func totalPages(count int64, pageSize int) int {
	pages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}

	return pages
}

// ListLogs returns one page of session records ordered by recency, filtered
// by the optional equality filters.
func (s *Service) ListLogs(ctx context.Context, filter *models.LogFilter, page, pageSize int) (*models.LogPage, error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, err
	}

	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	count, err := s.db.CountLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count logs: %w", err)
	}

	logs, err := s.db.ListLogs(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	return &models.LogPage{
		Logs:       logs,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: count,
		TotalPages: totalPages(count, pageSize),
	}, nil
}

// ListLatestPerNode returns one page of the most recent record for each node
// codename, ordered by recency of that record.
func (s *Service) ListLatestPerNode(ctx context.Context, filter *models.LogFilter, page, pageSize int) (*models.LogPage, error) {
	page, pageSize, err := normalizePaging(page, pageSize)
	if err != nil {
		return nil, err
	}

	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	count, err := s.db.CountDistinctNodes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count nodes: %w", err)
	}

	logs, err := s.db.ListLatestPerNode(ctx, filter, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest logs: %w", err)
	}

	return &models.LogPage{
		Logs:       logs,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: count,
		TotalPages: totalPages(count, pageSize),
	}, nil
}

// GetFilterOptions lists the distinct values currently stored for each
// filterable field.
func (s *Service) GetFilterOptions(ctx context.Context) (*models.LogFilterOptions, error) {
	opts, err := s.db.GetFilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load filter options: %w", err)
	}

	return opts, nil
}

// GetBySessionID looks up one session record. Returns db.ErrNotFound when no
// record carries the session ID.
func (s *Service) GetBySessionID(ctx context.Context, sessionID string) (*models.OTALog, error) {
	return s.db.GetLogBySessionID(ctx, sessionID)
}

// GetByKey looks up one session record by its full natural key.
func (s *Service) GetByKey(ctx context.Context, key models.NaturalKey) (*models.OTALog, error) {
	return s.db.GetLogByKey(ctx, key)
}

// ListVersions returns every session record for a node codename, newest
// first, so clients can render the node's update history.
func (s *Service) ListVersions(ctx context.Context, nodeCodename string) ([]*models.OTALog, error) {
	exists, err := s.db.NodeExists(ctx, nodeCodename)
	if err != nil {
		return nil, fmt.Errorf("failed to check node: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeCodename)
	}

	logs, err := s.db.ListVersions(ctx, nodeCodename)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	return logs, nil
}

// DeleteLogs removes session records for a node codename, optionally scoped
// to one firmware version. The two not-found cases are distinguished: an
// unknown codename yields ErrNodeNotFound, a known codename with no record
// at the requested version yields ErrFirmwareNotFound.
func (s *Service) DeleteLogs(ctx context.Context, nodeCodename, firmwareVersion string) (int64, error) {
	exists, err := s.db.NodeExists(ctx, nodeCodename)
	if err != nil {
		return 0, fmt.Errorf("failed to check node: %w", err)
	}

	if !exists {
		return 0, fmt.Errorf("%w: %s", ErrNodeNotFound, nodeCodename)
	}

	deleted, err := s.db.DeleteLogs(ctx, nodeCodename, firmwareVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to delete logs: %w", err)
	}

	if deleted == 0 && firmwareVersion != "" {
		return 0, fmt.Errorf("%w: %s@%s", ErrFirmwareNotFound, nodeCodename, firmwareVersion)
	}

	s.logger.Info().
		Str("node_codename", nodeCodename).
		Str("firmware_version", firmwareVersion).
		Int64("deleted", deleted).
		Msg("Deleted session records")

	return deleted, nil
}
