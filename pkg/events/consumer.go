package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"video-catalog/pkg/apperror"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// EncodedMessage is sent by the encoder when it finishes (or gives up on) a video.
type EncodedMessage struct {
	VideoID     string `json:"video_id"`
	EncodedPath string `json:"encoded_path"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

const (
	EncodedStatusCompleted = "COMPLETED"
	EncodedStatusError     = "ERROR"
)

// EncodedHandler applies a finished encoding to the catalog.
type EncodedHandler func(ctx context.Context, videoID, encodedPath string) error

// ackable is the part of jetstream.Msg the consumer needs.
type ackable interface {
	Data() []byte
	Ack() error
	Nak() error
	Term() error
}

// EncodedConsumer is a durable JetStream consumer for encoder results.
type EncodedConsumer struct {
	js      jetstream.JetStream
	stream  string
	subject string
	durable string
	handler EncodedHandler
	timeout time.Duration
	log     *zap.Logger

	consumeCtx jetstream.ConsumeContext
}

func NewEncodedConsumer(client *Client, handler EncodedHandler, log *zap.Logger) *EncodedConsumer {
	return &EncodedConsumer{
		js:      client.js,
		stream:  client.cfg.Stream,
		subject: client.cfg.EncodedSubject,
		durable: client.cfg.Durable,
		handler: handler,
		timeout: 30 * time.Second,
		log:     log.With(zap.String("consumer", "video_encoded")),
	}
}

func (c *EncodedConsumer) Start(ctx context.Context) error {
	consumer, err := c.js.CreateOrUpdateConsumer(ctx, c.stream, jetstream.ConsumerConfig{
		Durable:       c.durable,
		FilterSubject: c.subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.timeout,
		MaxDeliver:    5,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", c.durable, err)
	}

	cc, err := consumer.Consume(func(msg jetstream.Msg) {
		c.handle(context.Background(), msg)
	})
	if err != nil {
		return fmt.Errorf("start consuming %s: %w", c.subject, err)
	}
	c.consumeCtx = cc

	c.log.Info("Consumer started", zap.String("subject", c.subject), zap.String("durable", c.durable))
	return nil
}

func (c *EncodedConsumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
}

func (c *EncodedConsumer) handle(ctx context.Context, msg ackable) {
	var payload EncodedMessage
	if err := json.Unmarshal(msg.Data(), &payload); err != nil {
		c.log.Warn("Dropping undecodable message", zap.Error(err))
		c.settle(msg.Term())
		return
	}

	if payload.VideoID == "" {
		c.log.Warn("Dropping message without video id")
		c.settle(msg.Term())
		return
	}

	if !strings.EqualFold(payload.Status, EncodedStatusCompleted) {
		c.log.Warn("Encoding did not complete",
			zap.String("video_id", payload.VideoID),
			zap.String("status", payload.Status),
			zap.String("error", payload.Error),
		)
		c.settle(msg.Ack())
		return
	}

	if payload.EncodedPath == "" {
		c.log.Warn("Dropping completed message without encoded path", zap.String("video_id", payload.VideoID))
		c.settle(msg.Term())
		return
	}

	hctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.handler(hctx, payload.VideoID, payload.EncodedPath)
	switch {
	case err == nil:
		c.log.Info("Encoded path applied",
			zap.String("video_id", payload.VideoID),
			zap.String("encoded_path", payload.EncodedPath),
		)
		c.settle(msg.Ack())
	case apperror.IsNotFound(err) || apperror.IsBadRequest(err):
		c.log.Warn("Dropping encoded message", zap.Error(err), zap.String("video_id", payload.VideoID))
		c.settle(msg.Term())
	default:
		c.log.Error("Failed to apply encoded path, will retry", zap.Error(err), zap.String("video_id", payload.VideoID))
		c.settle(msg.Nak())
	}
}

func (c *EncodedConsumer) settle(err error) {
	if err != nil {
		c.log.Error("Failed to settle message", zap.Error(err))
	}
}
