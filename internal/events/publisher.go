package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"pizzeria-pos/internal/connections/rabbitmq"
)

const (
	salesExchange   = "sales_topic"
	kitchenSaleKey  = "kitchen.sale"
	jsonContentType = "application/json"
)

type SaleLine struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleEvent is the message the kitchen display consumes after a sale
// commits.
type SaleEvent struct {
	OrderID      int        `json:"order_id"`
	CustomerName string     `json:"customer_name"`
	Total        float64    `json:"total"`
	Items        []SaleLine `json:"items"`
}

type Publisher interface {
	PublishSaleCompleted(ctx context.Context, ev SaleEvent) error
}

type rabbitPublisher struct {
	client *rabbitmq.Client
}

// NewRabbitPublisher declares the sales exchange and returns a publisher
// over it.
func NewRabbitPublisher(client *rabbitmq.Client) (Publisher, error) {
	if err := client.Channel().ExchangeDeclare(
		salesExchange, "topic", true, false, false, false, nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", salesExchange, err)
	}
	return &rabbitPublisher{client: client}, nil
}

func (p *rabbitPublisher) PublishSaleCompleted(ctx context.Context, ev SaleEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal sale event: %w", err)
	}
	headers := amqp.Table{"x-source": "pizzeria-pos"}
	correlationID := fmt.Sprintf("%d", ev.OrderID)
	if err := p.client.Publish(ctx, salesExchange, kitchenSaleKey, body, headers, jsonContentType, correlationID); err != nil {
		return fmt.Errorf("failed to publish sale event: %w", err)
	}
	return nil
}
