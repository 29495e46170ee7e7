// Package service composes the stores, the availability engine and the
// event publisher into the operations the HTTP layer exposes.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/villa-booking/internal/availability"
	"github.com/iliyamo/villa-booking/internal/model"
	q "github.com/iliyamo/villa-booking/internal/queue"
	"github.com/iliyamo/villa-booking/internal/repository"
)

// BookingService holds no state of its own: every call reads the stores.
//
// CreateReservation checks availability and then inserts without a lock,
// so two concurrent requests for overlapping days can both succeed.
// Booking volume makes that acceptable; closing the gap needs a
// check-and-insert inside the store.
type BookingService struct {
	reservations repository.ReservationStore
	blocages     repository.BlocageStore
	publisher    Publisher
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

// Option tweaks a BookingService at construction.
type Option func(*BookingService)

// WithPublisher sends reservation.created events through p.
func WithPublisher(p Publisher) Option { return func(s *BookingService) { s.publisher = p } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(s *BookingService) { s.now = now } }

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(f func() string) Option { return func(s *BookingService) { s.newID = f } }

func NewBookingService(reservations repository.ReservationStore, blocages repository.BlocageStore, logger *zap.Logger, opts ...Option) *BookingService {
	if reservations == nil || blocages == nil {
		panic("nil store passed to NewBookingService")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &BookingService{
		reservations: reservations,
		blocages:     blocages,
		logger:       logger,
		now:          time.Now,
		newID:        func() string { return uuid.NewString() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Availability returns active reservations and all blocages.
func (s *BookingService) Availability(ctx context.Context) (availability.Snapshot, error) {
	active, err := s.reservations.ListActive(ctx)
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("load reservations: %w", err)
	}
	blocages, err := s.blocages.List(ctx)
	if err != nil {
		return availability.Snapshot{}, fmt.Errorf("load blocages: %w", err)
	}
	return availability.NewSnapshot(active, blocages), nil
}

// CreateReservation validates in, rejects it with ErrDateConflict when
// its days are taken, and otherwise stores it as pending.
func (s *BookingService) CreateReservation(ctx context.Context, in model.ReservationInput) (model.Reservation, error) {
	res, err := model.NewReservation(in, s.newID(), s.now())
	if err != nil {
		return model.Reservation{}, err
	}
	snap, err := s.Availability(ctx)
	if err != nil {
		return model.Reservation{}, err
	}
	if !snap.Free(res.Range()) {
		return model.Reservation{}, ErrDateConflict
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return model.Reservation{}, fmt.Errorf("store reservation: %w", err)
	}
	s.logger.Info("reservation created",
		zap.String("reservation_id", res.ID),
		zap.String("formula", string(res.Formula)),
		zap.Stringer("start_date", res.StartDate),
		zap.Stringer("end_date", res.EndDate),
	)
	s.publishCreated(ctx, res)
	return res, nil
}

func (s *BookingService) publishCreated(ctx context.Context, res model.Reservation) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
	defer cancel()
	ev := q.ReservationCreatedEvent{
		ReservationID: res.ID,
		Formula:       string(res.Formula),
		StartDate:     res.StartDate.String(),
		EndDate:       res.EndDate.String(),
		CustomerName:  res.CustomerName,
		PartySize:     res.PartySize,
		TotalAmount:   res.TotalAmount,
		PaymentPlan:   string(res.PaymentPlan),
		CreatedAt:     res.CreatedAt.Format(time.RFC3339),
	}
	if err := s.publisher.PublishReservationCreated(ctx, ev); err != nil {
		s.logger.Warn("reservation event not published", zap.String("reservation_id", res.ID), zap.Error(err))
	}
}

// GetReservation returns repository.ErrNotFound for an unknown id.
func (s *BookingService) GetReservation(ctx context.Context, id string) (model.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

// ListReservations returns every reservation, cancelled ones included.
func (s *BookingService) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.reservations.List(ctx)
}

// CreateBlocage stores a blocage without checking it against existing
// reservations: the owner's block always wins.
func (s *BookingService) CreateBlocage(ctx context.Context, in model.BlocageInput) (model.Blocage, error) {
	b, err := model.NewBlocage(in, s.newID(), s.now())
	if err != nil {
		return model.Blocage{}, err
	}
	if err := s.blocages.Create(ctx, b); err != nil {
		return model.Blocage{}, fmt.Errorf("store blocage: %w", err)
	}
	s.logger.Info("blocage created", zap.String("blocage_id", b.ID), zap.Stringer("start_date", b.StartDate), zap.Stringer("end_date", b.EndDate))
	return b, nil
}

func (s *BookingService) ListBlocages(ctx context.Context) ([]model.Blocage, error) {
	return s.blocages.List(ctx)
}

// DeleteBlocage returns repository.ErrNotFound when id is unknown.
func (s *BookingService) DeleteBlocage(ctx context.Context, id string) error {
	if err := s.blocages.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("blocage deleted", zap.String("blocage_id", id))
	return nil
}

// Stats aggregates the dashboard numbers.
func (s *BookingService) Stats(ctx context.Context) (model.Stats, error) {
	return s.reservations.Stats(ctx)
}
