package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Lersubem/foodstack/internal/domain"
	"github.com/rabbitmq/amqp091-go"
)

const (
	ordersExchange    = "foodstack.orders"
	orderPlacedKey    = "order.placed"
	publishTimeout    = 10 * time.Second
	persistentMessage = 2
)

// AMQPPublisher publishes order events to a RabbitMQ topic exchange.
type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// DialAMQP connects to the broker and declares the orders exchange.
func DialAMQP(url string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", ordersExchange, err)
	}

	return &AMQPPublisher{conn: conn, channel: channel}, nil
}

type orderPlacedMessage struct {
	OrderID   string                    `json:"orderID"`
	RequestID string                    `json:"requestID"`
	OrderTime time.Time                 `json:"orderTime"`
	Meals     []domain.OrderRequestItem `json:"meals"`
}

func (p *AMQPPublisher) OrderPlaced(ctx context.Context, order domain.Order) error {
	body, err := json.Marshal(orderPlacedMessage{
		OrderID:   order.OrderID,
		RequestID: order.Request.RequestID,
		OrderTime: order.OrderTime,
		Meals:     order.Request.Meals,
	})
	if err != nil {
		return fmt.Errorf("marshal order placed: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, ordersExchange, orderPlacedKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: persistentMessage,
		Timestamp:    order.OrderTime,
	})
	if err != nil {
		return fmt.Errorf("publish order placed: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	_ = p.channel.Close()
	return p.conn.Close()
}
