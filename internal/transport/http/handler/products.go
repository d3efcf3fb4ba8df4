package handler

import (
	"net/http"

	"github.com/barista-preorder/internal/application/catalog"
	"github.com/go-chi/chi/v5"
)

// ProductHandler serves the catalogue and lazily resolved product images.
type ProductHandler struct {
	svc catalog.Service
}

func NewProductHandler(svc catalog.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *ProductHandler) Image(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.ResolveImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ImageEnvelope{ImageURL: url})
}
