package notifications

import (
	"encoding/json"
	"fmt"
)

// Routing keys understood by the notification worker.
const (
	RKBookingCreated = "booking.created"
)

// BookingCreated carries just enough for the confirmation email.
type BookingCreated struct {
	BookingID uint   `json:"booking_id"`
	UserEmail string `json:"user_email"`
	ListTitle string `json:"list_title"`
}

func Decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}

// BookingConfirmation renders the fixed confirmation template.
func BookingConfirmation(listTitle string) (subject, body string) {
	subject = fmt.Sprintf("Booking Confirmation for %s", listTitle)
	body = fmt.Sprintf(
		"Hello,\n\nYour booking for %s has been confirmed. Thank you for using our service!",
		listTitle,
	)
	return subject, body
}
