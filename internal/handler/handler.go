package handler

import (
	"context"

	"github.com/vk-arghya/booking-site-like-tod0/internal/model"
)

// Store is what the handlers need from persistence.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateBooking(ctx context.Context, b *model.Booking) error
	ListBookings(ctx context.Context, userID string) ([]model.Booking, error)
}

type Handler struct {
	store  Store
	secret string
}

func New(st Store, secret string) *Handler {
	return &Handler{store: st, secret: secret}
}
