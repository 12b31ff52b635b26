package otalog

import (
	"encoding/json"
	"errors"

	"github.com/lokasync/cloudota/pkg/logger"
	"github.com/lokasync/cloudota/pkg/models"
)

var (
	ErrMissingBrokerURL      = errors.New("mqtt broker_url is required")
	ErrMissingTopic          = errors.New("mqtt topic is required")
	ErrInvalidQoS            = errors.New("mqtt qos must be 0, 1, or 2")
	ErrMissingDatabaseConfig = errors.New("database uri and name are required")
	ErrInvalidJSON           = errors.New("failed to unmarshal JSON configuration")
)

const defaultClientID = "cloudota-ingest"

// ConsumerConfig is the full configuration of the log consumer service.
type ConsumerConfig struct {
	MQTT     models.MQTTConfig    `json:"mqtt"`
	Database models.MongoDatabase `json:"database"`
	Logging  *logger.Config       `json:"logging,omitempty"`
}

func (c *ConsumerConfig) UnmarshalJSON(data []byte) error {
	type alias ConsumerConfig

	var a alias

	if err := json.Unmarshal(data, &a); err != nil {
		return errors.Join(ErrInvalidJSON, err)
	}

	*c = ConsumerConfig(a)

	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = defaultClientID
	}

	return nil
}

func (c *ConsumerConfig) Validate() error {
	var errs []error

	if c.MQTT.BrokerURL == "" {
		errs = append(errs, ErrMissingBrokerURL)
	}

	if c.MQTT.Topic == "" {
		errs = append(errs, ErrMissingTopic)
	}

	if c.MQTT.QoS > 2 {
		errs = append(errs, ErrInvalidQoS)
	}

	if c.Database.URI == "" || c.Database.Database == "" {
		errs = append(errs, ErrMissingDatabaseConfig)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}
