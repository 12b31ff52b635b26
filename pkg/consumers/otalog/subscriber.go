package otalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/lokasync/cloudota/pkg/logger"
	"github.com/lokasync/cloudota/pkg/models"
)

const (
	defaultQueueSize      = 1024
	defaultConnectTimeout = 30 * time.Second
	disconnectQuiesceMS   = 250
	keepAliveInterval     = 30 * time.Second
	pingTimeout           = 10 * time.Second
	connectRetryInterval  = 5 * time.Second
)

type inboundMessage struct {
	topic   string
	payload []byte
}

// Subscriber owns the broker connection. Paho delivers messages on its own
// goroutine; the handler only enqueues onto a bounded channel and a single
// consumer goroutine drains it through the pipeline, so a slow store never
// blocks the delivery callback.
type Subscriber struct {
	cfg       *models.MQTTConfig
	client    mqtt.Client
	processor *Processor
	logger    logger.Logger
	queue     chan inboundMessage
	stop      chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

func NewSubscriber(cfg *models.MQTTConfig, processor *Processor, log logger.Logger) *Subscriber {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Subscriber{
		cfg:       cfg,
		processor: processor,
		logger:    log,
		queue:     make(chan inboundMessage, queueSize),
		stop:      make(chan struct{}),
	}
}

func (s *Subscriber) Start(_ context.Context) error {
	clientID := s.cfg.ClientID
	if clientID == "" {
		clientID = defaultClientID
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.cfg.BrokerURL).
		// A random suffix keeps a restarted instance from kicking a
		// lingering session with the same ID off the broker.
		SetClientID(fmt.Sprintf("%s-%s", clientID, uuid.NewString()[:8])).
		SetOrderMatters(false).
		SetKeepAlive(keepAliveInterval).
		SetPingTimeout(pingTimeout).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(connectRetryInterval)

	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
	}

	if s.cfg.Password != "" {
		opts.SetPassword(s.cfg.Password)
	}

	// Subscription happens in OnConnect so it is re-established after every
	// reconnect, not just the first handshake.
	opts.OnConnect = func(c mqtt.Client) {
		s.logger.Info().Str("broker", s.cfg.BrokerURL).Msg("Connected to MQTT broker")

		if token := c.Subscribe(s.cfg.Topic, s.cfg.QoS, s.handleMessage); token.Wait() && token.Error() != nil {
			s.logger.Error().Err(token.Error()).Str("topic", s.cfg.Topic).Msg("MQTT subscribe failed")
		} else {
			s.logger.Info().Str("topic", s.cfg.Topic).Uint8("qos", s.cfg.QoS).Msg("Subscribed to log topic")
		}
	}

	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		s.logger.Warn().Err(err).Msg("MQTT connection lost")
	}

	s.client = mqtt.NewClient(opts)

	timeout := time.Duration(s.cfg.ConnectTimeout)
	if timeout == 0 {
		timeout = defaultConnectTimeout
	}

	token := s.client.Connect()
	if !token.WaitTimeout(timeout) {
		return ErrConnectTimeout
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	s.wg.Add(1)

	go s.consume()

	return nil
}

// handleMessage runs on the paho delivery goroutine and must not block.
// The queue is bounded: under sustained overload new messages are dropped
// and counted rather than stalling the broker callback.
func (s *Subscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	messagesReceived.Inc()

	select {
	case s.queue <- inboundMessage{topic: msg.Topic(), payload: msg.Payload()}:
	default:
		queueDrops.Inc()
		s.logger.Warn().Str("topic", msg.Topic()).Msg("Dispatch queue full, dropping message")
	}
}

func (s *Subscriber) consume() {
	defer s.wg.Done()

	for {
		select {
		case msg := <-s.queue:
			s.process(msg)
		case <-s.stop:
			s.drain()
			return
		}
	}
}

// drain finishes messages that were already queued when shutdown began.
// They run to completion rather than being cancelled mid-merge.
func (s *Subscriber) drain() {
	for {
		select {
		case msg := <-s.queue:
			s.process(msg)
		default:
			return
		}
	}
}

func (s *Subscriber) process(msg inboundMessage) {
	if err := s.processor.Process(context.Background(), msg.topic, msg.payload); err != nil {
		s.logger.Error().
			Err(err).
			Str("topic", msg.topic).
			Msg("Dropped message")
	}
}

// Stop unsubscribes and disconnects before the consumer drains, so no new
// deliveries arrive while queued messages finish their store writes.
func (s *Subscriber) Stop(ctx context.Context) error {
	if s.client != nil && s.client.IsConnected() {
		if token := s.client.Unsubscribe(s.cfg.Topic); token.Wait() && token.Error() != nil {
			s.logger.Error().Err(token.Error()).Msg("MQTT unsubscribe failed")
		}

		s.client.Disconnect(disconnectQuiesceMS)
	}

	s.stopOnce.Do(func() { close(s.stop) })

	done := make(chan struct{})

	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("subscriber drain interrupted: %w", ctx.Err())
	}
}
