package model

import (
	"strings"
	"time"
)

// Blocage is a range of days the owner has closed to bookings by hand.
type Blocage struct {
	ID        string    `json:"id"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

func (b Blocage) Range() DateRange { return DateRange{Start: b.StartDate, End: b.EndDate} }

// BlocageInput is the body of a create-blocage request.
type BlocageInput struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func NewBlocage(in BlocageInput, id string, createdAt time.Time) (Blocage, error) {
	row := BlocageRow{
		ID:        id,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    strings.TrimSpace(in.Reason),
		CreatedAt: createdAt.UTC(),
	}
	return row.Blocage()
}

// BlocageRow is the stored shape of a Blocage.
type BlocageRow struct {
	ID        string    `json:"id" bson:"id" validate:"required"`
	StartDate string    `json:"start_date" bson:"start_date"`
	EndDate   string    `json:"end_date" bson:"end_date"`
	Reason    string    `json:"reason" bson:"reason" validate:"max=500"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (row BlocageRow) Blocage() (Blocage, error) {
	if err := Validate(row); err != nil {
		return Blocage{}, err
	}
	rng, err := parseRange(row.StartDate, row.EndDate)
	if err != nil {
		return Blocage{}, err
	}
	return Blocage{
		ID:        row.ID,
		StartDate: rng.Start,
		EndDate:   rng.End,
		Reason:    row.Reason,
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}

func (b Blocage) Row() BlocageRow {
	return BlocageRow{
		ID:        b.ID,
		StartDate: b.StartDate.String(),
		EndDate:   b.EndDate.String(),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}
