package http

import (
	"net/http"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the portal API. Role enforcement here is the transport-level
// gate; the workflow engine re-validates the actor role on every transition.
func NewRouter(
	tokens security.TokenManager,
	authHandler *AuthHandler,
	moveHandler *MoveRequestHandler,
	commentHandler *CommentHandler,
	receiptHandler *ReceiptHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/token", authHandler.IssueToken).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(AuthMiddleware(tokens))

	api.HandleFunc("/move-requests", RequireRole(domain.RoleResident, moveHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests", moveHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/move-requests/{id}", moveHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/move-requests/{id}/schedule", RequireRole(domain.RoleResident, moveHandler.UpdateSchedule)).Methods(http.MethodPatch)

	api.HandleFunc("/move-requests/{id}/approve", RequireRole(domain.RoleFM, moveHandler.Approve)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/reject", RequireRole(domain.RoleFM, moveHandler.Reject)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/claim-payment", RequireRole(domain.RoleResident, moveHandler.ClaimPayment)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/verify-payment", RequireRole(domain.RoleFM, moveHandler.VerifyPayment)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/cash-receipt", RequireRole(domain.RoleFM, moveHandler.RecordCashReceipt)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/insurance", RequireRole(domain.RoleResident, moveHandler.SelectInsurance)).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/cancel", RequireRole(domain.RoleResident, moveHandler.Cancel)).Methods(http.MethodPost)

	api.HandleFunc("/move-requests/{id}/comments", commentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/move-requests/{id}/comments", commentHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/comments/read", commentHandler.MarkRead).Methods(http.MethodPost)
	api.HandleFunc("/move-requests/{id}/comments/unread", commentHandler.UnreadCount).Methods(http.MethodGet)

	api.HandleFunc("/move-requests/{id}/receipt", receiptHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/move-requests/{id}/receipt.pdf", receiptHandler.GetPDF).Methods(http.MethodGet)

	return r
}
