package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vk-arghya/booking-site-like-tod0/internal/auth"
	"github.com/vk-arghya/booking-site-like-tod0/internal/httputil"
	"github.com/vk-arghya/booking-site-like-tod0/internal/middleware"
	"github.com/vk-arghya/booking-site-like-tod0/internal/model"
)

func identity(ctx context.Context) *auth.Claims {
	return ctx.Value(middleware.IdentityKey).(*auth.Claims)
}

// AccountName answers straight from the verified token, no store round trip.
func (h *Handler) AccountName(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"accountName": identity(r.Context()).Name,
	})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date    string `json:"date"`
		Time    string `json:"time"`
		Service string `json:"service"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.Time == "" || req.Service == "" {
		httputil.RespondError(w, http.StatusBadRequest, "date, time and service required")
		return
	}

	b := &model.Booking{
		ID:      uuid.New().String(),
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
		UserID:  identity(r.Context()).UserID,
	}
	if err := h.store.CreateBooking(r.Context(), b); err != nil {
		writeError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]any{
		"message": "booking created",
		"booking": b,
	})
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.store.ListBookings(r.Context(), identity(r.Context()).UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		// empty list is [] on the wire, not null
		bookings = []model.Booking{}
	}
	httputil.RespondJSON(w, http.StatusOK, bookings)
}
