package http

import (
	"net/http"

	"residence-portal-backend/internal/service"

	"github.com/gorilla/mux"
)

type ReceiptHandler struct {
	svc service.ReceiptService
}

func NewReceiptHandler(svc service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{svc: svc}
}

func (h *ReceiptHandler) Get(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.svc.GetReceiptByMoveRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

func (h *ReceiptHandler) GetPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.svc.RenderReceiptPDF(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="cash-receipt.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
