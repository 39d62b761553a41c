package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/cipherstack/cipher-auth/pkg/logging"
)

const Topic = "auth.events"

const (
	TypeUserSignedUp  = "user.signed_up"
	TypeUserSignedIn  = "user.signed_in"
	TypeTokenRevoked  = "token.revoked"
	TypePasswordReset = "password.reset"
)

type envelope struct {
	Type    string    `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload,omitempty"`
}

// Producer publishes auth events to Kafka. A nil Producer is a valid no-op,
// so callers never guard their publishes.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return &Producer{writer: w}
}

// Publish is best-effort: a failed delivery is logged and never fails the
// request that triggered it.
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) {
	if p == nil {
		return
	}

	data, err := json.Marshal(envelope{Type: eventType, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		logging.FromContext(ctx).Warn("event_marshal_failed", "type", eventType, "error", err)
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data}); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "type", eventType, "error", err)
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
