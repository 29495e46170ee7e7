package model

import (
	"errors"
	"testing"
	"time"
)

func validInput() ReservationInput {
	return ReservationInput{
		Formula:       "weekend",
		StartDate:     "2025-09-12",
		EndDate:       "2025-09-14",
		CustomerName:  "Camille Martin",
		CustomerEmail: "camille@example.com",
		CustomerPhone: "+33 6 12 34 56 78",
		PartySize:     12,
		TotalAmount:   800,
		PaymentPlan:   "2x",
	}
}

func TestNewReservationDefaultsToPending(t *testing.T) {
	created := time.Date(2025, 9, 1, 8, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	r, err := NewReservation(validInput(), "res-1", created)
	if err != nil {
		t.Fatalf("new reservation: %v", err)
	}
	if r.PaymentStatus != StatusPending {
		t.Fatalf("status = %s, want pending", r.PaymentStatus)
	}
	if r.CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at not UTC: %v", r.CreatedAt)
	}
	if r.Range().Days() != 3 {
		t.Fatalf("days = %d", r.Range().Days())
	}
}

func TestNewReservationRejectsBadFields(t *testing.T) {
	cases := map[string]func(*ReservationInput){
		"formula":        func(in *ReservationInput) { in.Formula = "castle" },
		"customer_email": func(in *ReservationInput) { in.CustomerEmail = "not-an-email" },
		"party_size":     func(in *ReservationInput) { in.PartySize = 0 },
		"payment_plan":   func(in *ReservationInput) { in.PaymentPlan = "5x" },
		"total_amount":   func(in *ReservationInput) { in.TotalAmount = -1 },
		"customer_name":  func(in *ReservationInput) { in.CustomerName = "  " },
		"end_date":       func(in *ReservationInput) { in.EndDate = "2025-09-11" },
		"start_date":     func(in *ReservationInput) { in.StartDate = "soon" },
	}
	for field, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := NewReservation(in, "res-1", time.Now())
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %v", field, err)
		}
		if ve.Field != field {
			t.Fatalf("%s: error names field %q (%v)", field, ve.Field, ve)
		}
	}
}

func TestPartySizeCappedAtEighty(t *testing.T) {
	in := validInput()
	in.PartySize = MaxPartySize
	if _, err := NewReservation(in, "res-1", time.Now()); err != nil {
		t.Fatalf("party of %d rejected: %v", MaxPartySize, err)
	}
	in.PartySize = MaxPartySize + 1
	if _, err := NewReservation(in, "res-1", time.Now()); !IsValidation(err) {
		t.Fatalf("party of %d accepted", MaxPartySize+1)
	}
}

func TestReservationRowRoundTrip(t *testing.T) {
	r, err := NewReservation(validInput(), "res-7", time.Now())
	if err != nil {
		t.Fatalf("new reservation: %v", err)
	}
	back, err := r.Row().Reservation()
	if err != nil {
		t.Fatalf("row back: %v", err)
	}
	if back.ID != r.ID || !back.StartDate.Equal(r.StartDate) || back.PaymentPlan != r.PaymentPlan {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, r)
	}
}

func TestRowWithUnknownStatusIsRejected(t *testing.T) {
	r, _ := NewReservation(validInput(), "res-8", time.Now())
	row := r.Row()
	row.PaymentStatus = "refunded"
	if _, err := row.Reservation(); !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPaymentStatusFlags(t *testing.T) {
	if StatusCancelled.Active() || !StatusPartial.Active() {
		t.Fatal("active flag wrong")
	}
	if !StatusComplete.Earned() || !StatusPartial.Earned() || StatusPending.Earned() {
		t.Fatal("earned flag wrong")
	}
}

func TestNewBlocageValidatesRange(t *testing.T) {
	b, err := NewBlocage(BlocageInput{StartDate: "2025-12-24", EndDate: "2025-12-26", Reason: " family "}, "blk-1", time.Now())
	if err != nil {
		t.Fatalf("new blocage: %v", err)
	}
	if b.Reason != "family" {
		t.Fatalf("reason = %q", b.Reason)
	}
	if _, err := NewBlocage(BlocageInput{StartDate: "2025-12-26", EndDate: "2025-12-24"}, "blk-2", time.Now()); !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
