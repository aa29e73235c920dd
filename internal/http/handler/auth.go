package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"quadro/internal/auth"
	"quadro/internal/config"

	"gorm.io/gorm"
)

type AuthHandler struct {
	DB  *gorm.DB
	JWT *auth.JWT
	Cfg config.Config
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(req.Email); err != nil || len(req.Password) < 8 {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	u := auth.User{Email: req.Email, PasswordHash: hash}
	if err := h.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			errorJSON(w, http.StatusConflict, "Email already in use")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, userResp{ID: u.ID, Email: u.Email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}

	// unknown email and wrong password answer identically
	var u auth.User
	if err := h.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.JWT.Sign(u.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	setSessionCookie(w, h.Cfg, token)
	writeJSON(w, http.StatusOK, userResp{ID: u.ID, Email: u.Email})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.Cfg)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
