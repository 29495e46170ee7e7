package model

import (
	"strings"
	"time"
)

// Reservation is a customer's booking of the villa for a closed range of
// days.  Values are only produced by NewReservation or ReservationRow.Reservation,
// so a Reservation in hand always satisfies start <= end and the field rules.
type Reservation struct {
	ID            string        `json:"id"`
	Formula       Formula       `json:"formula"`
	StartDate     Date          `json:"start_date"`
	EndDate       Date          `json:"end_date"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	PartySize     int           `json:"party_size"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentPlan   PaymentPlan   `json:"payment_plan"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Range returns the booked days.
func (r Reservation) Range() DateRange { return DateRange{Start: r.StartDate, End: r.EndDate} }

// ReservationInput is the body of a public booking request.
type ReservationInput struct {
	Formula       string  `json:"formula"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	PartySize     int     `json:"party_size"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentPlan   string  `json:"payment_plan"`
}

// NewReservation validates a booking request and stamps it with id and
// createdAt.  The payment status always starts as pending.
func NewReservation(in ReservationInput, id string, createdAt time.Time) (Reservation, error) {
	row := ReservationRow{
		ID:            id,
		Formula:       strings.TrimSpace(in.Formula),
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.TrimSpace(in.CustomerEmail),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		PartySize:     in.PartySize,
		TotalAmount:   in.TotalAmount,
		PaymentPlan:   strings.TrimSpace(in.PaymentPlan),
		PaymentStatus: string(StatusPending),
		CreatedAt:     createdAt.UTC(),
	}
	return row.Reservation()
}

// ReservationRow is the flat shape a store reads and writes.  Dates are
// kept as YYYY-MM-DD strings.
type ReservationRow struct {
	ID            string    `json:"id" bson:"id" validate:"required"`
	Formula       string    `json:"formula" bson:"formula" validate:"required,oneof=week_stay weekend holiday_weekend day_event"`
	StartDate     string    `json:"start_date" bson:"start_date"`
	EndDate       string    `json:"end_date" bson:"end_date"`
	CustomerName  string    `json:"customer_name" bson:"customer_name" validate:"required,max=200"`
	CustomerEmail string    `json:"customer_email" bson:"customer_email" validate:"required,email"`
	CustomerPhone string    `json:"customer_phone" bson:"customer_phone" validate:"required,max=40"`
	PartySize     int       `json:"party_size" bson:"party_size" validate:"min=1,max=80"`
	TotalAmount   float64   `json:"total_amount" bson:"total_amount" validate:"gte=0"`
	PaymentPlan   string    `json:"payment_plan" bson:"payment_plan" validate:"required,oneof=1x 2x 3x 4x"`
	PaymentStatus string    `json:"payment_status" bson:"payment_status" validate:"required,oneof=pending partial complete cancelled"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// Reservation converts a row into a typed record, rejecting anything that
// does not hold up.
func (row ReservationRow) Reservation() (Reservation, error) {
	if err := Validate(row); err != nil {
		return Reservation{}, err
	}
	rng, err := parseRange(row.StartDate, row.EndDate)
	if err != nil {
		return Reservation{}, err
	}
	return Reservation{
		ID:            row.ID,
		Formula:       Formula(row.Formula),
		StartDate:     rng.Start,
		EndDate:       rng.End,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		PartySize:     row.PartySize,
		TotalAmount:   row.TotalAmount,
		PaymentPlan:   PaymentPlan(row.PaymentPlan),
		PaymentStatus: PaymentStatus(row.PaymentStatus),
		CreatedAt:     row.CreatedAt.UTC(),
	}, nil
}

// Row flattens r for storage.
func (r Reservation) Row() ReservationRow {
	return ReservationRow{
		ID:            r.ID,
		Formula:       string(r.Formula),
		StartDate:     r.StartDate.String(),
		EndDate:       r.EndDate.String(),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		PartySize:     r.PartySize,
		TotalAmount:   r.TotalAmount,
		PaymentPlan:   string(r.PaymentPlan),
		PaymentStatus: string(r.PaymentStatus),
		CreatedAt:     r.CreatedAt,
	}
}

func parseRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, &ValidationError{Field: "start_date", Message: err.(*ValidationError).Message}
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, &ValidationError{Field: "end_date", Message: err.(*ValidationError).Message}
	}
	return NewDateRange(s, e)
}

// Stats summarises reservations for the owner dashboard.
type Stats struct {
	Total        int64   `json:"total_reservations"`
	Confirmed    int64   `json:"confirmed_reservations"`
	Pending      int64   `json:"pending_reservations"`
	TotalRevenue float64 `json:"total_revenue"`
}
