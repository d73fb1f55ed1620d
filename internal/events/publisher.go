// Package events publishes order lifecycle messages for downstream
// consumers (kitchen displays, notifications). Publishing is best effort:
// the order is durable before any message is sent.
package events

import (
	"context"

	"github.com/Lersubem/foodstack/internal/domain"
)

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) OrderPlaced(context.Context, domain.Order) error {
	return nil
}
