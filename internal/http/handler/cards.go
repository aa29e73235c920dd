package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"quadro/internal/auth"
	"quadro/internal/card"

	"github.com/go-chi/chi/v5"
)

type CardHandler struct {
	Svc *card.Service
}

func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	cards, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	if cards == nil {
		cards = []card.Card{}
	}
	writeJSON(w, http.StatusOK, cards)
}

type createCardReq struct {
	Title string  `json:"title"`
	Notes *string `json:"notes"`
	Tag   *string `json:"tag"`
	// a caller-supplied status is ignored; new cards land in INBOX
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createCardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}

	c, err := h.Svc.Create(r.Context(), uid, card.CreateCardInput{
		Title: req.Title,
		Notes: req.Notes,
		Tag:   req.Tag,
	})
	if err != nil {
		if errors.Is(err, card.ErrInvalid) {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

// Update decodes the patch body via a raw key map first: a key that is
// present with a JSON null clears the column (notes, tag), while an
// absent key leaves it alone.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	cardID := chi.URLParam(r, "id")

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil || raw == nil {
		errorJSON(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var in card.UpdateCardInput
	if v, ok := raw["title"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil || s == nil {
			errorJSON(w, http.StatusBadRequest, "Invalid input")
			return
		}
		in.Title = s
	}
	if v, ok := raw["notes"]; ok {
		if err := json.Unmarshal(v, &in.Notes); err != nil {
			errorJSON(w, http.StatusBadRequest, "Invalid input")
			return
		}
		in.NotesSet = true
	}
	if v, ok := raw["tag"]; ok {
		if err := json.Unmarshal(v, &in.Tag); err != nil {
			errorJSON(w, http.StatusBadRequest, "Invalid input")
			return
		}
		in.TagSet = true
	}
	if v, ok := raw["status"]; ok {
		var s *string
		if err := json.Unmarshal(v, &s); err != nil || s == nil {
			errorJSON(w, http.StatusBadRequest, "Invalid input")
			return
		}
		st, err := card.ParseStatus(*s)
		if err != nil {
			errorJSON(w, http.StatusBadRequest, err.Error())
			return
		}
		in.Status = &st
	}

	c, err := h.Svc.Update(r.Context(), uid, cardID, in)
	if err != nil {
		switch {
		case errors.Is(err, card.ErrInvalid):
			errorJSON(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, card.ErrNotFound):
			errorJSON(w, http.StatusNotFound, "Not found")
		default:
			errorJSON(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	cardID := chi.URLParam(r, "id")

	if err := h.Svc.Delete(r.Context(), uid, cardID); err != nil {
		if errors.Is(err, card.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "Not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
