// Package models contains the shared data types for the CloudOTA backend.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OTAStatus is the lifecycle status of one firmware update session.
type OTAStatus string

const (
	StatusInProgress OTAStatus = "in-progress"
	StatusSuccess    OTAStatus = "success"
	StatusFailed     OTAStatus = "failed"
)

// AllStatuses lists every status a session record can carry.
func AllStatuses() []string {
	return []string{string(StatusInProgress), string(StatusSuccess), string(StatusFailed)}
}

// NaturalKey identifies exactly one OTA update attempt on one node.
// All seven fields together form the identity of a session record;
// no two records may share an identical tuple.
type NaturalKey struct {
	SessionID       string `bson:"session_id" json:"session_id"`
	NodeMAC         string `bson:"node_mac" json:"node_mac"`
	NodeLocation    string `bson:"node_location" json:"node_location"`
	NodeType        string `bson:"node_type" json:"node_type"`
	NodeID          string `bson:"node_id" json:"node_id"`
	NodeCodename    string `bson:"node_codename" json:"node_codename"`
	FirmwareVersion string `bson:"firmware_version" json:"firmware_version"`
}

// OTALog is one session record: the folded state of all stage messages
// received for a single node/firmware/session tuple. Progress fields are
// pointers so that "stage not yet observed" is stored as an explicit null,
// keeping the query response schema uniform.
type OTALog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	NaturalKey `bson:",inline"`

	DownloadStartedAt   *time.Time `bson:"download_started_at" json:"download_started_at"`
	FirmwareSizeKB      *float64   `bson:"firmware_size_kb" json:"firmware_size_kb"`
	BytesWritten        *float64   `bson:"bytes_written" json:"bytes_written"`
	DownloadDurationSec *float64   `bson:"download_duration_sec" json:"download_duration_sec"`
	DownloadSpeedKBps   *float64   `bson:"download_speed_kbps" json:"download_speed_kbps"`
	DownloadCompletedAt *time.Time `bson:"download_completed_at" json:"download_completed_at"`
	FlashCompletedAt    *time.Time `bson:"flash_completed_at" json:"flash_completed_at"`

	FlashStatus OTAStatus `bson:"flash_status" json:"flash_status"`

	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	LatestUpdated time.Time `bson:"latest_updated" json:"latest_updated"`
}

// LogUpdate is the typed field-update set produced by the stage resolver.
// Nil fields are untouched by a merge; non-nil fields overwrite the stored
// value (last write wins per field). Status is a hint, not a demand: it is
// only applied when set, and new records default to in-progress.
type LogUpdate struct {
	DownloadStartedAt   *time.Time
	FirmwareSizeKB      *float64
	BytesWritten        *float64
	DownloadDurationSec *float64
	DownloadSpeedKBps   *float64
	DownloadCompletedAt *time.Time
	FlashCompletedAt    *time.Time
	Status              *OTAStatus
}

// IsEmpty reports whether the update would not change any field.
func (u *LogUpdate) IsEmpty() bool {
	if u == nil {
		return true
	}

	return u.DownloadStartedAt == nil &&
		u.FirmwareSizeKB == nil &&
		u.BytesWritten == nil &&
		u.DownloadDurationSec == nil &&
		u.DownloadSpeedKBps == nil &&
		u.DownloadCompletedAt == nil &&
		u.FlashCompletedAt == nil &&
		u.Status == nil
}
