package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/kernel"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// RabbitMQNotifier publishes each notification as a persistent JSON message on a durable
// fanout exchange. It does not declare queues; consumers bind their own.
type RabbitMQNotifier struct {
	channel  *amqp.Channel
	exchange string
	clock    kernel.Clock
	mu       sync.Mutex
}

func NewRabbitMQNotifier(conn *amqp.Connection, exchange string, clock kernel.Clock) (*RabbitMQNotifier, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &RabbitMQNotifier{
		channel:  channel,
		exchange: exchange,
		clock:    clock,
	}, nil
}

// Notify returns once the broker accepted the frame. It does not wait for delivery.
func (n *RabbitMQNotifier) Notify(ctx context.Context, destination kernel.PhoneNumber, text string) error {
	msg := newMessage(destination, text, n.clock.Now())
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	n.mu.Lock()
	defer n.mu.Unlock()

	return n.channel.PublishWithContext(
		ctx,
		n.exchange,
		"",
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.MessageID,
			Timestamp:    msg.CreatedAt,
			Body:         body,
		},
	)
}

func (n *RabbitMQNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.channel.Close()
}
