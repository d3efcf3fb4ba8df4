package handler

import (
	"net/http"

	"github.com/barista-preorder/internal/application/order"
)

// OrderHandler serves the barista confirmed-orders board.
type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListConfirmed(r.Context()))
}
