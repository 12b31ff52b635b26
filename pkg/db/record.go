package db

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/lokasync/cloudota/pkg/models"
)

// keyFilter matches a record by its full natural key.
func keyFilter(key models.NaturalKey) bson.M {
	return bson.M{
		"session_id":       key.SessionID,
		"node_mac":         key.NodeMAC,
		"node_location":    key.NodeLocation,
		"node_type":        key.NodeType,
		"node_id":          key.NodeID,
		"node_codename":    key.NodeCodename,
		"firmware_version": key.FirmwareVersion,
	}
}

// filterQuery translates optional equality filters into a match document.
func filterQuery(filter *models.LogFilter) bson.M {
	query := bson.M{}

	if filter == nil {
		return query
	}

	if filter.NodeLocation != "" {
		query["node_location"] = filter.NodeLocation
	}

	if filter.NodeType != "" {
		query["node_type"] = filter.NodeType
	}

	if filter.FlashStatus != "" {
		query["flash_status"] = filter.FlashStatus
	}

	return query
}

// updateFields builds the $set document for a merge: every non-nil update
// field overwrites the stored value, and latest_updated is always bumped.
func updateFields(update *models.LogUpdate, now time.Time) bson.M {
	set := bson.M{"latest_updated": now}

	if update == nil {
		return set
	}

	if update.DownloadStartedAt != nil {
		set["download_started_at"] = *update.DownloadStartedAt
	}

	if update.FirmwareSizeKB != nil {
		set["firmware_size_kb"] = *update.FirmwareSizeKB
	}

	if update.BytesWritten != nil {
		set["bytes_written"] = *update.BytesWritten
	}

	if update.DownloadDurationSec != nil {
		set["download_duration_sec"] = *update.DownloadDurationSec
	}

	if update.DownloadSpeedKBps != nil {
		set["download_speed_kbps"] = *update.DownloadSpeedKBps
	}

	if update.DownloadCompletedAt != nil {
		set["download_completed_at"] = *update.DownloadCompletedAt
	}

	if update.FlashCompletedAt != nil {
		set["flash_completed_at"] = *update.FlashCompletedAt
	}

	if update.Status != nil {
		set["flash_status"] = *update.Status
	}

	return set
}

// newLogRecord seeds a fresh session record. Progress fields stay explicit
// nulls unless the first observed stage provides them, so the query response
// schema is uniform from the very first write.
func newLogRecord(key models.NaturalKey, update *models.LogUpdate, now time.Time) *models.OTALog {
	record := &models.OTALog{
		NaturalKey:    key,
		FlashStatus:   models.StatusInProgress,
		CreatedAt:     now,
		LatestUpdated: now,
	}

	if update == nil {
		return record
	}

	record.DownloadStartedAt = update.DownloadStartedAt
	record.FirmwareSizeKB = update.FirmwareSizeKB
	record.BytesWritten = update.BytesWritten
	record.DownloadDurationSec = update.DownloadDurationSec
	record.DownloadSpeedKBps = update.DownloadSpeedKBps
	record.DownloadCompletedAt = update.DownloadCompletedAt
	record.FlashCompletedAt = update.FlashCompletedAt

	if update.Status != nil {
		record.FlashStatus = *update.Status
	}

	return record
}
