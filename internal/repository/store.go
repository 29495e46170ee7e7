package repository

import (
	"context"

	"github.com/iliyamo/villa-booking/internal/model"
)

// ReservationStore persists reservations.  Reservations are never deleted.
type ReservationStore interface {
	Create(ctx context.Context, r model.Reservation) error
	GetByID(ctx context.Context, id string) (model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
	// ListActive returns reservations whose status is not cancelled.
	ListActive(ctx context.Context) ([]model.Reservation, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// BlocageStore persists owner blocages.
type BlocageStore interface {
	Create(ctx context.Context, b model.Blocage) error
	List(ctx context.Context) ([]model.Blocage, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ ReservationStore = (*ReservationRepo)(nil)
	_ BlocageStore     = (*BlocageRepo)(nil)
	_ ReservationStore = (*MongoReservationStore)(nil)
	_ BlocageStore     = (*MongoBlocageStore)(nil)
)
