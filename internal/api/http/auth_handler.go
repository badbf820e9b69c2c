package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"residence-portal-backend/internal/config"
	"residence-portal-backend/internal/domain"
	"residence-portal-backend/internal/security"
)

type AuthHandler struct {
	tokens security.TokenManager
	auth   config.AuthConfig
}

func NewAuthHandler(tokens security.TokenManager, auth config.AuthConfig) *AuthHandler {
	return &AuthHandler{tokens: tokens, auth: auth}
}

type tokenRequest struct {
	Role   domain.AuthorRole `json:"role"`
	Name   string            `json:"name"`
	Secret string            `json:"secret"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken exchanges a per-role shared secret for a role-bearing JWT.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "name is required"})
		return
	}

	var hash string
	switch req.Role {
	case domain.RoleResident:
		hash = h.auth.ResidentSecretHash
	case domain.RoleFM:
		hash = h.auth.FMSecretHash
	default:
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "role must be resident or fm"})
		return
	}

	if hash == "" || !security.VerifySecret(hash, req.Secret) {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateToken(req.Role, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}
