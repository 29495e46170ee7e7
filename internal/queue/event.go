// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedQueue carries one message per persisted reservation.
const ReservationCreatedQueue = "reservation.created"

// ReservationCreatedEvent is published after a reservation is stored.  It
// carries enough for downstream consumers to log or notify without
// reading the database.
type ReservationCreatedEvent struct {
	ReservationID string  `json:"reservation_id"`
	Formula       string  `json:"formula"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	CustomerName  string  `json:"customer_name"`
	PartySize     int     `json:"party_size"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentPlan   string  `json:"payment_plan"`
	CreatedAt     string  `json:"created_at"`
}
