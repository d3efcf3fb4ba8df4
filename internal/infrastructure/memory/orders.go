package memory

import (
	"sync"

	"github.com/barista-preorder/internal/domain"
)

// OrderBoard is the in-memory confirmed-orders list shown to baristas,
// most recent order first. Orders are append-only: nothing mutates or
// removes an entry once placed.
type OrderBoard struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderBoard() *OrderBoard {
	return &OrderBoard{}
}

// Prepend places o at the front of the board.
func (b *OrderBoard) Prepend(o domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append([]domain.Order{o}, b.orders...)
}

// List returns a copy of the board, most recent first.
func (b *OrderBoard) List() []domain.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return out
}
