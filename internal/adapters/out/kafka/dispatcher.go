// Package kafka provides the Kafka-backed notification channel. Rendered
// notifications are published as JSON to a single topic; delivery beyond the
// broker (mail relay, SMS gateway) is the consumer's concern.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"orders/internal/core/domain/model/notification"

	"github.com/IBM/sarama"
)

// message is the wire format published to the notification topic.
type message struct {
	Contact     string `json:"contact"`
	Template    string `json:"template"`
	OrderNumber string `json:"orderNumber"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
}

// Dispatcher publishes notifications to a Kafka topic using a synchronous
// producer, so Dispatch can report broker errors to its caller.
type Dispatcher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewDispatcher connects a synchronous producer to the given brokers.
func NewDispatcher(brokers []string, topic string) (*Dispatcher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForLocal
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start kafka producer: %w", err)
	}

	return &Dispatcher{producer: producer, topic: topic}, nil
}

// Dispatch publishes one rendered notification. Messages are keyed by order
// number so notifications for the same order stay ordered within a partition.
func (d *Dispatcher) Dispatch(ctx context.Context, n notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(message{
		Contact:     n.Contact(),
		Template:    n.TemplateKey().String(),
		OrderNumber: n.OrderNumber(),
		Subject:     n.Subject(),
		Body:        n.Body(),
	})
	if err != nil {
		return err
	}

	_, _, err = d.producer.SendMessage(&sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(n.OrderNumber()),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

// Close shuts down the underlying producer.
func (d *Dispatcher) Close() error {
	return d.producer.Close()
}
