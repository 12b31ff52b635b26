package otalog

import (
	"context"
	"fmt"

	"github.com/lokasync/cloudota/pkg/db"
	"github.com/lokasync/cloudota/pkg/lifecycle"
	"github.com/lokasync/cloudota/pkg/logger"
)

// Service ties the broker subscription to the log store and participates in
// process lifecycle management.
type Service struct {
	config     *ConsumerConfig
	subscriber *Subscriber
	db         db.Service
	logger     logger.Logger
}

var _ lifecycle.Service = (*Service)(nil)

func NewService(config *ConsumerConfig, dbService db.Service, log logger.Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid consumer config: %w", err)
	}

	processor := NewProcessor(dbService, log)

	return &Service{
		config:     config,
		subscriber: NewSubscriber(&config.MQTT, processor, log),
		db:         dbService,
		logger:     log,
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	s.logger.Info().
		Str("broker", s.config.MQTT.BrokerURL).
		Str("topic", s.config.MQTT.Topic).
		Msg("Starting OTA log consumer")

	return s.subscriber.Start(ctx)
}

// Stop tears down the subscription first so queued messages can finish their
// store writes before the database connection closes.
func (s *Service) Stop(ctx context.Context) error {
	s.logger.Info().Msg("Stopping OTA log consumer")

	if err := s.subscriber.Stop(ctx); err != nil {
		return err
	}

	return s.db.Close(ctx)
}
