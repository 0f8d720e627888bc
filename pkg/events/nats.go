package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"video-catalog/pkg/utils"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// Client wraps a NATS connection and its JetStream context.
type Client struct {
	nc  *nats.Conn
	js  jetstream.JetStream
	cfg utils.NATSConfig
	log *zap.Logger
}

// NewClient connects and makes sure the catalog stream exists. The returned
// cleanup drains the connection.
func NewClient(cfg utils.NATSConfig, log *zap.Logger) (*Client, func(), error) {
	log = log.With(zap.String("component", "nats"))

	opts := []nats.Option{
		nats.Name("video-catalog"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Error("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      cfg.Stream,
		Subjects:  []string{cfg.CreatedSubject, cfg.EncodedSubject},
		Retention: jetstream.WorkQueuePolicy,
		MaxAge:    7 * 24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create stream %s: %w", cfg.Stream, err)
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			log.Error("Failed to drain NATS connection", zap.Error(err))
		}
	}

	return &Client{nc: nc, js: js, cfg: cfg, log: log}, cleanup, nil
}

// Envelope is the wire format of every published event.
type Envelope struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

// NATSPublisher publishes events to the stream's "created" subject.
type NATSPublisher struct {
	js      jetstream.JetStream
	subject string
	log     *zap.Logger
}

func NewNATSPublisher(client *Client, log *zap.Logger) *NATSPublisher {
	return &NATSPublisher{
		js:      client.js,
		subject: client.cfg.CreatedSubject,
		log:     log.With(zap.String("dispatcher", "nats")),
	}
}

func (p *NATSPublisher) Dispatch(ctx context.Context, event Event) {
	envelope := Envelope{
		ID:         uuid.NewString(),
		Name:       event.Name(),
		Key:        event.Key(),
		OccurredAt: time.Now().UTC(),
		Data:       event.Payload(),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		p.log.Error("Failed to marshal event", zap.Error(err), zap.String("event", event.Name()))
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	ack, err := p.js.Publish(pubCtx, p.subject, data, jetstream.WithMsgID(envelope.ID))
	if err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("event", event.Name()),
			zap.String("key", event.Key()),
			zap.String("subject", p.subject),
		)
		return
	}

	p.log.Info("Event published",
		zap.String("event", event.Name()),
		zap.String("key", event.Key()),
		zap.String("stream", ack.Stream),
		zap.Uint64("sequence", ack.Sequence),
	)
}
