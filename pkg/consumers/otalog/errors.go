package otalog

import "errors"

var (
	// ErrMalformedPayload reports a payload that is not well-formed JSON.
	// The message is dropped; redelivery will never make it well-formed.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMissingIdentity reports a payload missing one of the identity
	// fields. Partial-identity messages must not create partial records.
	ErrMissingIdentity = errors.New("missing identity field")

	// ErrStoreLog reports a failed upsert; the message counts as
	// unprocessed and broker redelivery, if any, is the retry mechanism.
	ErrStoreLog = errors.New("failed to store session record")

	// ErrConnectTimeout reports that the broker handshake did not finish
	// within the configured connect timeout.
	ErrConnectTimeout = errors.New("timed out connecting to MQTT broker")
)
