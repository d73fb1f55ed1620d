package domain

import (
	"strings"
	"time"
)

// Order is an accepted, immutable purchase. The stored request is the
// filtered copy of what the client sent: zero-quantity lines are dropped.
type Order struct {
	OrderID   string       `json:"orderID"`
	OrderTime time.Time    `json:"orderTime"`
	Request   OrderRequest `json:"request"`
}

// OrderRequest is the client payload. RequestID is the client-chosen
// idempotency key scoping at-most-one-order semantics.
type OrderRequest struct {
	RequestID string             `json:"requestID"`
	Meals     []OrderRequestItem `json:"meals"`
}

type OrderRequestItem struct {
	MealID   string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Filtered returns a copy of the request keeping only lines with a positive
// quantity. This is the form an accepted order persists.
func (r OrderRequest) Filtered() OrderRequest {
	out := OrderRequest{RequestID: r.RequestID}
	for _, item := range r.Meals {
		if item.Quantity <= 0 {
			continue
		}
		out.Meals = append(out.Meals, item)
	}
	return out
}

// MealQuantities maps lowercased meal IDs to quantities, ignoring lines with
// quantity <= 0.
func (r OrderRequest) MealQuantities() map[string]int {
	m := make(map[string]int, len(r.Meals))
	for _, item := range r.Meals {
		if item.Quantity <= 0 {
			continue
		}
		m[strings.ToLower(item.MealID)] = item.Quantity
	}
	return m
}

// EquivalentRequests reports whether two requests order the same meals in the
// same quantities, regardless of line order and meal ID casing.
func EquivalentRequests(left, right OrderRequest) bool {
	lm := left.MealQuantities()
	rm := right.MealQuantities()
	if len(lm) != len(rm) {
		return false
	}
	for id, qty := range lm {
		if rm[id] != qty {
			return false
		}
	}
	return true
}
