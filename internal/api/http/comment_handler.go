package http

import (
	"encoding/json"
	"net/http"

	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/service"

	"github.com/gorilla/mux"
)

type CommentHandler struct {
	svc service.CommentService
}

func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.GetComments(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	respondJSON(w, http.StatusOK, comments)
}

type addCommentRequest struct {
	Message string `json:"message"`
}

func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	var in addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	comment, err := h.svc.AddComment(r.Context(), actor, mux.Vars(r)["id"], in.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	if err := h.svc.MarkRead(r.Context(), actor.Role, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type unreadResponse struct {
	Unread int32 `json:"unread"`
}

func (h *CommentHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	count, err := h.svc.UnreadCount(r.Context(), actor.Role, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, unreadResponse{Unread: count})
}
