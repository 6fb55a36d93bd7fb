package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start runs the publish loop until ctx is canceled, then flushes whatever
// is still buffered in the inbox and closes the writer.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				close(p.inbox)
				for m := range p.inbox {
					_ = p.w.WriteMessages(context.Background(), m)
				}
				_ = p.w.Close()
				return
			case m := <-p.inbox:
				_ = p.w.WriteMessages(context.Background(), m)
			}
		}
	}()
}

// Publish enqueues fire-and-forget; events must never block an order response.
func (p *Producer) Publish(key, value []byte, headers ...kafka.Header) {
	select {
	case p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now(), Headers: headers}:
	default:
		// inbox full: drop rather than stall the request path
	}
}

// WaitClosed blocks until the publish loop has drained after cancellation.
func (p *Producer) WaitClosed() { <-p.closeCh }
