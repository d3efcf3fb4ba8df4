package handler

import (
	"encoding/json"
	"net/http"

	"github.com/barista-preorder/internal/application/verification"
	"github.com/barista-preorder/internal/pkg/validate"
)

// VerificationHandler handles code issuance and checkout (code redemption).
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

// SendCode issues a verification code and emails it to the customer.
func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req verification.IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.IssueCode(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "verification code sent"})
}

// Checkout redeems a code and, for a positive total, places the order on the
// confirmed board. A zero total confirms a login without placing an order.
func (h *VerificationHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req verification.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	order, err := h.svc.Redeem(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OrderEnvelope{Order: order})
}
