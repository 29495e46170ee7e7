package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/villa-booking/internal/model"
)

// ReservationRepo stores reservations in the reservations table.  Dates
// live in CHAR(10) YYYY-MM-DD columns and created_at is UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationColumns = `id, formula, start_date, end_date, customer_name, customer_email,
customer_phone, party_size, total_amount, payment_plan, payment_status, created_at`

// Create inserts r as-is.  The caller assigns id, status and created_at.
func (r *ReservationRepo) Create(ctx context.Context, res model.Reservation) error {
	row := res.Row()
	const q = `INSERT INTO reservations (` + reservationColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		row.ID, row.Formula, row.StartDate, row.EndDate, row.CustomerName, row.CustomerEmail,
		row.CustomerPhone, row.PartySize, row.TotalAmount, row.PaymentPlan, row.PaymentStatus, row.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID returns ErrNotFound when no reservation has the id.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ? LIMIT 1`
	res, err := scanReservation(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Reservation{}, ErrNotFound
	}
	return res, err
}

// List returns every reservation, ordered by start date.
func (r *ReservationRepo) List(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY start_date, created_at`
	return r.query(ctx, q)
}

// ListActive skips cancelled reservations.
func (r *ReservationRepo) ListActive(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE payment_status <> ? ORDER BY start_date, created_at`
	return r.query(ctx, q, string(model.StatusCancelled))
}

// Stats aggregates counts and revenue in a single pass over the table.
func (r *ReservationRepo) Stats(ctx context.Context) (model.Stats, error) {
	const q = `SELECT COUNT(*),
	COALESCE(SUM(CASE WHEN payment_status = ? THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN payment_status = ? THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN payment_status IN (?, ?) THEN total_amount ELSE 0 END), 0)
	FROM reservations`
	var s model.Stats
	err := r.db.QueryRowContext(ctx, q,
		string(model.StatusComplete),
		string(model.StatusPending),
		string(model.StatusComplete), string(model.StatusPartial),
	).Scan(&s.Total, &s.Confirmed, &s.Pending, &s.TotalRevenue)
	if err != nil {
		return model.Stats{}, fmt.Errorf("reservation stats: %w", err)
	}
	return s, nil
}

func (r *ReservationRepo) query(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()
	out := []model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(s rowScanner) (model.Reservation, error) {
	var (
		row     model.ReservationRow
		created sqlTime
	)
	err := s.Scan(&row.ID, &row.Formula, &row.StartDate, &row.EndDate, &row.CustomerName, &row.CustomerEmail,
		&row.CustomerPhone, &row.PartySize, &row.TotalAmount, &row.PaymentPlan, &row.PaymentStatus, &created)
	if err != nil {
		return model.Reservation{}, err
	}
	row.CreatedAt = created.t
	res, err := row.Reservation()
	if err != nil {
		return model.Reservation{}, fmt.Errorf("reservation %s: %w", row.ID, err)
	}
	return res, nil
}
