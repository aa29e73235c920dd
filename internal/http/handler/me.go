package handler

import (
	"errors"
	"net/http"

	"quadro/internal/auth"

	"gorm.io/gorm"
)

type MeHandler struct {
	DB *gorm.DB
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var u auth.User
	if err := h.DB.Where("id = ?", uid).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// valid token for a user row that no longer exists
			errorJSON(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, userResp{ID: u.ID, Email: u.Email})
}
