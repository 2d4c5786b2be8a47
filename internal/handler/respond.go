package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/vk-arghya/booking-site-like-tod0/internal/httputil"
	"github.com/vk-arghya/booking-site-like-tod0/internal/store"
)

// writeError maps store errors onto the wire. Anything unrecognized is
// logged server-side and reported as a bare 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		httputil.RespondError(w, http.StatusConflict, "email already registered")
	default:
		log.Printf("handler: %v", err)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
