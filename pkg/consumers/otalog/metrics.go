package otalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "messages_received_total",
		Help:      "Messages delivered by the broker subscription.",
	})

	queueDrops = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "queue_drops_total",
		Help:      "Messages dropped because the dispatch queue was full.",
	})

	decodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "decode_failures_total",
		Help:      "Messages dropped because the payload was not valid JSON.",
	})

	validationDrops = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "validation_drops_total",
		Help:      "Messages dropped because an identity field was missing.",
	})

	unrecognizedStages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "unrecognized_stages_total",
		Help:      "Messages consumed without effect because the stage phrase is not tracked.",
	})

	upsertsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "upserts_applied_total",
		Help:      "Stage updates successfully folded into session records.",
	})

	storeErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cloudota",
		Subsystem: "ingest",
		Name:      "store_errors_total",
		Help:      "Upserts that failed because the store was unavailable.",
	})
)
