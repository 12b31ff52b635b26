// Package otalog ingests OTA update lifecycle messages from the telemetry
// broker and folds them into session records.
package otalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lokasync/cloudota/pkg/models"
)

// Event is one decoded stage message: the session identity, the normalized
// stage phrase, and whatever stage-specific data the node attached.
type Event struct {
	Key        models.NaturalKey
	StageText  string
	Data       map[string]interface{}
	Topic      string
	ReceivedAt time.Time
}

// logPayload mirrors the JSON published by nodes on the log topic.
// Unknown fields are ignored.
type logPayload struct {
	SessionID       string                 `json:"session_id"`
	NodeMAC         string                 `json:"node_mac"`
	NodeLocation    string                 `json:"node_location"`
	NodeType        string                 `json:"node_type"`
	NodeID          string                 `json:"node_id"`
	NodeCodename    string                 `json:"node_codename"`
	FirmwareVersion string                 `json:"firmware_version"`
	Message         string                 `json:"message"`
	Data            map[string]interface{} `json:"data"`
}

// decodeEvent parses a raw inbound message into an Event. A JSON error maps
// to ErrMalformedPayload; any missing or empty identity field maps to
// ErrMissingIdentity with the field name attached.
func decodeEvent(topic string, payload []byte, receivedAt time.Time) (*Event, error) {
	var p logPayload

	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, errors.Join(ErrMalformedPayload, err)
	}

	identity := []struct {
		name  string
		value string
	}{
		{"session_id", p.SessionID},
		{"node_mac", p.NodeMAC},
		{"node_location", p.NodeLocation},
		{"node_type", p.NodeType},
		{"node_id", p.NodeID},
		{"node_codename", p.NodeCodename},
		{"firmware_version", p.FirmwareVersion},
	}

	for _, field := range identity {
		if strings.TrimSpace(field.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingIdentity, field.name)
		}
	}

	return &Event{
		Key: models.NaturalKey{
			SessionID:       p.SessionID,
			NodeMAC:         p.NodeMAC,
			NodeLocation:    p.NodeLocation,
			NodeType:        p.NodeType,
			NodeID:          p.NodeID,
			NodeCodename:    p.NodeCodename,
			FirmwareVersion: p.FirmwareVersion,
		},
		StageText:  normalizeStage(p.Message),
		Data:       p.Data,
		Topic:      topic,
		ReceivedAt: receivedAt,
	}, nil
}

func normalizeStage(message string) string {
	return strings.ToLower(strings.TrimSpace(message))
}
