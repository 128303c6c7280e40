package handlers

import (
	"HomeCrew/internal/config"
	"HomeCrew/internal/middleware"
	"HomeCrew/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler serves registration and login.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

type profileResponse struct {
	UserID   int64  `json:"user_id"`
	Login    string `json:"login"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Register creates an account and signs the new user in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" {
		http.Error(w, "login and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Login, req.Password, req.FullName, req.Email)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			http.Error(w, "login is already taken", http.StatusConflict)
			return
		}
		h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to set auth cookie", "user_id", u.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(profileResponse{UserID: u.ID, Login: u.Login, FullName: u.FullName, Email: u.Email})
}

// Login verifies credentials and sets the auth cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid login or password", http.StatusUnauthorized)
			return
		}
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set auth cookie", "user_id", u.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(profileResponse{UserID: u.ID, Login: u.Login, FullName: u.FullName, Email: u.Email})
}
