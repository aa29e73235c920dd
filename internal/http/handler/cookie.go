package handler

import (
	"net/http"
	"time"

	"quadro/internal/auth"
	"quadro/internal/config"
)

func setSessionCookie(w http.ResponseWriter, cfg config.Config, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: cfg.CookieSameSite,
		Secure:   cfg.CookieSecure,
		Expires:  time.Now().Add(auth.SessionTTL),
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: cfg.CookieSameSite,
		Secure:   cfg.CookieSecure,
		MaxAge:   -1,
	})
}
