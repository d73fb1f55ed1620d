package domain

import "errors"

var (
	ErrRequestIDTaken   = errors.New("requestID already used by another order")
	ErrOrderIDCollision = errors.New("orderID already exists")
	ErrMenuNotFound     = errors.New("menu not found")
	ErrInvalidID        = errors.New("invalid id")
)
