package otalog

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/lokasync/cloudota/pkg/models"
)

// Stage phrases published by nodes during an OTA update, matched exactly
// after trimming and case-folding. Substring matching is deliberately
// avoided so new device phrases never silently alias onto old ones.
const (
	stageUpdateStarted  = "ota update started"
	stageFirmwareSizeOK = "firmware size ok"
	stageBytesWritten   = "firmware bytes written"
	stageDownloadTime   = "download time (s)"
	stageDownloadSpeed  = "download speed (kb/s)"
	stageDownloadDone   = "download complete"
	stageUpdateComplete = "ota update complete"
)

// resolveStage maps a decoded event to a typed field-update set. The second
// return value is false for stage phrases this pipeline does not track; such
// messages are consumed without touching the store, which keeps "we don't
// track this" distinct from "the device sent garbage".
func resolveStage(event *Event, now time.Time) (*models.LogUpdate, bool) {
	switch event.StageText {
	case stageUpdateStarted:
		status := models.StatusInProgress
		return &models.LogUpdate{DownloadStartedAt: &now, Status: &status}, true
	case stageFirmwareSizeOK:
		return &models.LogUpdate{FirmwareSizeKB: auxNumber(event.Data, "size_kb")}, true
	case stageBytesWritten:
		return &models.LogUpdate{BytesWritten: auxNumber(event.Data, "bytes")}, true
	case stageDownloadTime:
		return &models.LogUpdate{DownloadDurationSec: auxNumber(event.Data, "seconds")}, true
	case stageDownloadSpeed:
		return &models.LogUpdate{DownloadSpeedKBps: auxNumber(event.Data, "speed_kbps")}, true
	case stageDownloadDone:
		return &models.LogUpdate{DownloadCompletedAt: &now}, true
	case stageUpdateComplete:
		status := models.StatusSuccess
		return &models.LogUpdate{FlashCompletedAt: &now, Status: &status}, true
	default:
		return nil, false
	}
}

// auxNumber pulls a numeric value out of the stage-specific data map.
// Nodes are not consistent about number encoding, so strings and
// json.Number are accepted too. A missing or unusable value yields nil:
// the stage is still applied, just without that field.
func auxNumber(data map[string]interface{}, key string) *float64 {
	if data == nil {
		return nil
	}

	switch v := data[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}

	return nil
}
