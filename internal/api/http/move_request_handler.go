package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/service"

	"github.com/gorilla/mux"
)

type MoveRequestHandler struct {
	svc service.MoveRequestService
}

func NewMoveRequestHandler(svc service.MoveRequestService) *MoveRequestHandler {
	return &MoveRequestHandler{svc: svc}
}

func (h *MoveRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in service.CreateMoveRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	req, err := h.svc.CreateMoveRequest(r.Context(), actor, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

func (h *MoveRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.GetMoveRequest(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

type listResponse struct {
	Items []domain.MoveRequest `json:"items"`
	Total int32                `json:"total"`
	Page  int32                `json:"page"`
}

func (h *MoveRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parseInt32(q.Get("page"), 1)
	pageSize := parseInt32(q.Get("page_size"), 20)

	items, total, err := h.svc.ListMoveRequests(r.Context(),
		domain.MoveStatus(q.Get("status")), q.Get("unit"), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	if items == nil {
		items = []domain.MoveRequest{}
	}
	respondJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page})
}

func (h *MoveRequestHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in service.ScheduleUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	req, err := h.svc.UpdateSchedule(r.Context(), actor, mux.Vars(r)["id"], in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, req)
}

type approveRequest struct {
	Method      domain.PaymentMethod `json:"method"`
	AmountCents int32                `json:"amount_cents"`
	BankDetails string               `json:"bank_details"`
	CashDate    string               `json:"cash_date"`
}

func (h *MoveRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in approveRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.svc.ApproveWithDeposit(r.Context(), actor, mux.Vars(r)["id"], in.Method, in.AmountCents, in.BankDetails, in.CashDate); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *MoveRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.svc.Reject(r.Context(), actor, mux.Vars(r)["id"], in.Reason); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type claimPaymentRequest struct {
	PaidDate string `json:"paid_date"`
	ProofRef string `json:"proof_ref"`
}

func (h *MoveRequestHandler) ClaimPayment(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in claimPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.svc.ClaimPayment(r.Context(), actor, mux.Vars(r)["id"], in.PaidDate, in.ProofRef); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MoveRequestHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	if err := h.svc.VerifyPayment(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MoveRequestHandler) RecordCashReceipt(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in service.CashReceiptInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	receipt, err := h.svc.RecordCashReceipt(r.Context(), actor, mux.Vars(r)["id"], in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, receipt)
}

type insuranceRequest struct {
	HasInsurance *bool `json:"has_insurance"`
}

func (h *MoveRequestHandler) SelectInsurance(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in insuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if in.HasInsurance == nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "has_insurance must be answered yes or no"})
		return
	}
	if err := h.svc.SelectInsurance(r.Context(), actor, mux.Vars(r)["id"], *in.HasInsurance); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MoveRequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	if err := h.svc.Cancel(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func parseInt32(value string, fallback int32) int32 {
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil || n < 1 {
		return fallback
	}
	return int32(n)
}
