package handler

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/vk-arghya/booking-site-like-tod0/internal/httputil"
	"github.com/vk-arghya/booking-site-like-tod0/internal/middleware"
)

// NewRouter wires the dispatch table. webDir holds the static client.
func NewRouter(h *Handler, webDir string) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", handleHealth)

	// public
	r.Post("/signup", h.Signup)
	r.Post("/signin", h.Signin)

	// protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.secret))
		r.Get("/fetch-account-name", h.AccountName)
		r.Post("/bookings", h.CreateBooking)
		r.Get("/bookings", h.ListBookings)
	})

	// static client
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(webDir, "index.html"))
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
