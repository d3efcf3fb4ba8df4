package order

import (
	"context"
	"testing"

	"github.com/barista-preorder/internal/domain"
	"github.com/barista-preorder/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListConfirmed_MostRecentFirst(t *testing.T) {
	board := memory.NewOrderBoard()
	board.Prepend(domain.Order{ID: "ord1", CustomerName: "Ana", Total: 3.25, Status: domain.OrderStatusConfirmed})
	board.Prepend(domain.Order{ID: "ord2", CustomerName: "Bo", Total: 6.50, Status: domain.OrderStatusConfirmed})

	svc := NewService(board)
	orders := svc.ListConfirmed(context.Background())

	require.Len(t, orders, 2)
	assert.Equal(t, "ord2", orders[0].ID)
	assert.Equal(t, "ord1", orders[1].ID)
}

func TestListConfirmed_EmptyBoard(t *testing.T) {
	svc := NewService(memory.NewOrderBoard())
	assert.Empty(t, svc.ListConfirmed(context.Background()))
}
