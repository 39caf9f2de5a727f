package handlers

import (
	"net/http"

	"github.com/a2sh3r/aitrade/internal/logger"
	"github.com/a2sh3r/aitrade/internal/middleware"
	"github.com/a2sh3r/aitrade/internal/models"
	"go.uber.org/zap"
)

type authRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	AffiliateCode string `json:"affiliate_code,omitempty"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password, req.AffiliateCode)
	if err != nil {
		writeError(w, err, "register failed")
		return
	}

	h.startSession(w, r, user)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := decodeJSON(r, &req); err != nil || req.Email == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	h.startSession(w, r, user)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user *models.User) {
	sid, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("create session failed", zap.Stringer("user", user.ID), zap.Error(err))
		return
	}

	tokenString, err := middleware.IssueToken(h.secretKey, user.ID, sid, h.tokenTTL)
	if err != nil {
		http.Error(w, "could not create token", http.StatusInternalServerError)
		return
	}

	user.Password = ""
	w.Header().Set("Authorization", "Bearer "+tokenString)
	writeJSON(w, http.StatusOK, authResponse{Token: tokenString, User: user})
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.GetSessionID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.sessions.Revoke(r.Context(), sid); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("revoke session failed", zap.Error(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, err, "get user failed")
		return
	}
	roles, err := h.userService.GetRoles(r.Context(), userID)
	if err != nil {
		writeError(w, err, "get roles failed")
		return
	}

	writeJSON(w, http.StatusOK, models.Session{Active: true, UserID: user.ID, Email: user.Email, Roles: roles})
}
