package store

import (
	"context"

	"github.com/vk-arghya/booking-site-like-tod0/internal/model"
)

func (s *Store) CreateBooking(ctx context.Context, b *model.Booking) error {
	return s.pool.QueryRow(ctx,
		`INSERT INTO bookings (id, date, time, service, user_id)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		b.ID, b.Date, b.Time, b.Service, b.UserID,
	).Scan(&b.CreatedAt)
}

// ListBookings returns the user's bookings ordered by date then time of day,
// which for ISO 8601 strings is chronological order.
func (s *Store) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, date, time, service, user_id, created_at
		 FROM bookings
		 WHERE user_id = $1
		 ORDER BY date, time`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.Date, &b.Time, &b.Service, &b.UserID, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
