package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/darji-master/orders-service/internal/catalog"
	"github.com/darji-master/orders-service/internal/logger"
)

const (
	EventOrderCreated  = "order.created"
	EventStatusChanged = "order.status_changed"
)

// OrderEvent is the message published after each successful mutation so
// downstream consumers (SMS notifier, reporting) can react without polling.
type OrderEvent struct {
	Type    string         `json:"type"`
	OrderID string         `json:"order_id"`
	Status  catalog.Status `json:"status"`
	At      time.Time      `json:"at"`
}

type Producer struct {
	w *kafka.Writer
}

func NewProducer(brokersSTR, topic string) *Producer {
	brokers := strings.Split(brokersSTR, ",")

	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
	}
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.w.Close()
}

// Publish sends one event keyed by order id. Mutations never wait on this;
// callers run it fire-and-forget and a nil producer is a no-op.
func (p *Producer) Publish(ctx context.Context, ev OrderEvent) {
	if p == nil {
		return
	}
	b, err := json.Marshal(ev)
	if err != nil {
		logger.Warn("event marshal failed", "err", err)
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.OrderID),
		Value: b,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		logger.Warn("event publish failed", "type", ev.Type, "order", ev.OrderID, "err", err)
	}
}
