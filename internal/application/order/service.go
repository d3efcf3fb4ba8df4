package order

import (
	"context"

	"github.com/barista-preorder/internal/domain"
)

// Board is the read side of the confirmed-orders list.
type Board interface {
	List() []domain.Order
}

type Service interface {
	// ListConfirmed returns the barista view, most recent order first.
	ListConfirmed(ctx context.Context) []domain.Order
}

type service struct {
	board Board
}

func NewService(board Board) Service {
	return &service{board: board}
}

func (s *service) ListConfirmed(ctx context.Context) []domain.Order {
	return s.board.List()
}
