package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var errInvalidDuration = errors.New("invalid duration")

// Duration wraps time.Duration so JSON configs can use either a numeric
// nanosecond count or a string like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MongoDatabase is the connection configuration for the session record store.
type MongoDatabase struct {
	URI            string   `json:"uri"`
	Database       string   `json:"database"`
	LogsCollection string   `json:"logs_collection"`
	ConnectTimeout Duration `json:"connect_timeout,omitempty"`
}

// MQTTConfig is the connection configuration for the telemetry broker.
type MQTTConfig struct {
	BrokerURL      string   `json:"broker_url"`
	ClientID       string   `json:"client_id"`
	Topic          string   `json:"topic"`
	QoS            byte     `json:"qos"`
	Username       string   `json:"username,omitempty"`
	Password       string   `json:"password,omitempty"`
	ConnectTimeout Duration `json:"connect_timeout,omitempty"`
	QueueSize      int      `json:"queue_size,omitempty"`
}
