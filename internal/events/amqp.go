package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"auction-engine/utils"
)

// AMQPPublisher mirrors bus events to a rabbitmq topic exchange so external
// consumers (notification delivery, wallet reconciliation) can react to
// them. It is wired as one more bus subscriber; in-process dispatch does not
// depend on the broker being reachable.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAMQPPublisher dials the broker and declares a durable topic exchange.
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Handler returns the bus subscriber that forwards events to the exchange.
// Publish failures are logged, not propagated: the auction outcome never
// depends on the mirror.
func (p *AMQPPublisher) Handler() Handler {
	return func(ctx context.Context, ev Event) {
		if err := p.publish(ctx, ev); err != nil {
			utils.Error("amqp: failed to mirror event", map[string]any{
				"routing_key": ev.RoutingKey(),
				"error":       err.Error(),
			})
		}
	}
}

func (p *AMQPPublisher) publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.ch.PublishWithContext(ctx, p.exchange, ev.RoutingKey(), false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

// Close releases the channel and connection.
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
