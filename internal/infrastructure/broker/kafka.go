package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/yonatanberih/pulse/internal/domain/contract"
	"github.com/yonatanberih/pulse/internal/domain/entity"
)

// NotificationPublisher pushes persisted notifications onto a Kafka topic
// for live delivery. Messages are keyed by recipient so one recipient's
// stream stays ordered.
type NotificationPublisher struct {
	writer *kafka.Writer
}

// NewNotificationPublisher creates and returns a new NotificationPublisher
// instance.
func NewNotificationPublisher(bootstrap, topic string) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(bootstrap),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireNone,
			Async:        true,
		},
	}
}

var _ contract.INotificationPublisher = (*NotificationPublisher)(nil)

// Publish writes the notification as JSON keyed by recipient id.
func (p *NotificationPublisher) Publish(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.RecipientID),
		Value: payload,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
