package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/villa-booking/internal/model"
)

// BlocageRepo stores owner blocages in the blocages table.
type BlocageRepo struct {
	db *sql.DB
}

func NewBlocageRepo(db *sql.DB) *BlocageRepo { return &BlocageRepo{db: db} }

func (r *BlocageRepo) Create(ctx context.Context, b model.Blocage) error {
	row := b.Row()
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO blocages (id, start_date, end_date, reason, created_at) VALUES (?, ?, ?, ?, ?)",
		row.ID, row.StartDate, row.EndDate, row.Reason, row.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert blocage: %w", err)
	}
	return nil
}

func (r *BlocageRepo) List(ctx context.Context) ([]model.Blocage, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, start_date, end_date, reason, created_at FROM blocages ORDER BY start_date, created_at")
	if err != nil {
		return nil, fmt.Errorf("query blocages: %w", err)
	}
	defer rows.Close()
	out := []model.Blocage{}
	for rows.Next() {
		var (
			row     model.BlocageRow
			created sqlTime
		)
		if err := rows.Scan(&row.ID, &row.StartDate, &row.EndDate, &row.Reason, &created); err != nil {
			return nil, err
		}
		row.CreatedAt = created.t
		b, err := row.Blocage()
		if err != nil {
			return nil, fmt.Errorf("blocage %s: %w", row.ID, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Delete removes the blocage or returns ErrNotFound.
func (r *BlocageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM blocages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete blocage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

