package http

import (
	"net/http"

	"quadro/internal/auth"
	"quadro/internal/card"
	"quadro/internal/config"
	"quadro/internal/http/handler"
	mw "quadro/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, jwtSvc *auth.JWT) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	ah := &handler.AuthHandler{DB: db, JWT: jwtSvc, Cfg: cfg}
	r.Post("/auth/register", ah.Register)
	r.Post("/auth/login", ah.Login)
	r.Post("/auth/logout", ah.Logout)

	me := &handler.MeHandler{DB: db}
	r.With(auth.RequireAuth(jwtSvc, cfg.CookieName)).Get("/me", me.Me)

	cardH := &handler.CardHandler{Svc: &card.Service{DB: db}}

	r.Route("/cards", func(r chi.Router) {
		r.Use(auth.RequireAuth(jwtSvc, cfg.CookieName))

		r.Get("/", cardH.List)
		r.Post("/", cardH.Create)

		r.Patch("/{id}", cardH.Update)
		r.Delete("/{id}", cardH.Delete)
	})

	return r
}
