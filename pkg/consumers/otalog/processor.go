package otalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lokasync/cloudota/pkg/db"
	"github.com/lokasync/cloudota/pkg/logger"
)

// Processor runs the decode, resolve, upsert pipeline for one message.
// The clock is injected so tests control every timestamp the pipeline
// writes.
type Processor struct {
	db     db.Service
	logger logger.Logger
	clock  func() time.Time
}

func NewProcessor(dbService db.Service, log logger.Logger) *Processor {
	return &Processor{db: dbService, logger: log, clock: time.Now}
}

// Process folds one raw message into its session record. Decode and
// validation failures drop the message; an untracked stage phrase consumes
// the message without a store call. Errors never escape past the consume
// loop, so one bad message cannot stall the subscription.
func (p *Processor) Process(ctx context.Context, topic string, payload []byte) error {
	now := p.clock()

	event, err := decodeEvent(topic, payload, now)
	if err != nil {
		switch {
		case errors.Is(err, ErrMalformedPayload):
			decodeFailures.Inc()
		case errors.Is(err, ErrMissingIdentity):
			validationDrops.Inc()
		}

		return err
	}

	update, tracked := resolveStage(event, now)
	if !tracked {
		unrecognizedStages.Inc()
		p.logger.Debug().
			Str("stage", event.StageText).
			Str("session_id", event.Key.SessionID).
			Str("node_codename", event.Key.NodeCodename).
			Msg("Untracked stage phrase, message consumed without effect")

		return nil
	}

	record, err := p.db.UpsertLog(ctx, event.Key, update, now)
	if err != nil {
		storeErrors.Inc()
		return fmt.Errorf("%w: %w", ErrStoreLog, err)
	}

	upsertsApplied.Inc()
	p.logger.Debug().
		Str("stage", event.StageText).
		Str("session_id", record.SessionID).
		Str("node_codename", record.NodeCodename).
		Str("flash_status", string(record.FlashStatus)).
		Msg("Applied stage update")

	return nil
}
