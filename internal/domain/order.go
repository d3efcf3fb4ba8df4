package domain

import "time"

// OrderStatus is the lifecycle state shown on the barista board.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Order is a confirmed purchase. Orders are append-only: once on the board
// nothing mutates or removes them.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"userName"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}
