package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Placement outcome labels for OrdersPlaced.
const (
	OutcomeAccepted    = "accepted"
	OutcomeDuplicate   = "duplicate_echo"
	OutcomeConflict    = "conflict"
	OutcomeInvalid     = "invalid"
	OutcomeUnknownMeal = "unknown_meal"
	OutcomeError       = "error"
)

var OrdersPlaced = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "foodstack_orders_placed_total",
	Help: "Placement attempts by outcome.",
}, []string{"outcome"})

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "foodstack_http_requests_total",
	Help: "HTTP requests by method and status.",
}, []string{"method", "status"})
