package database

import (
	"context"
	"database/sql"
	"fmt"
)

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id             VARCHAR(64)   NOT NULL PRIMARY KEY,
		formula        VARCHAR(32)   NOT NULL,
		start_date     CHAR(10)      NOT NULL,
		end_date       CHAR(10)      NOT NULL,
		customer_name  VARCHAR(200)  NOT NULL,
		customer_email VARCHAR(254)  NOT NULL,
		customer_phone VARCHAR(40)   NOT NULL,
		party_size     INT           NOT NULL,
		total_amount   DECIMAL(12,2) NOT NULL,
		payment_plan   VARCHAR(4)    NOT NULL,
		payment_status VARCHAR(16)   NOT NULL DEFAULT 'pending',
		created_at     DATETIME(6)   NOT NULL,
		INDEX idx_reservations_status_start (payment_status, start_date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS blocages (
		id         VARCHAR(64)  NOT NULL PRIMARY KEY,
		start_date CHAR(10)     NOT NULL,
		end_date   CHAR(10)     NOT NULL,
		reason     VARCHAR(500) NOT NULL DEFAULT '',
		created_at DATETIME(6)  NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id             TEXT          NOT NULL PRIMARY KEY,
		formula        TEXT          NOT NULL,
		start_date     TEXT          NOT NULL,
		end_date       TEXT          NOT NULL,
		customer_name  TEXT          NOT NULL,
		customer_email TEXT          NOT NULL,
		customer_phone TEXT          NOT NULL,
		party_size     INTEGER       NOT NULL,
		total_amount   DECIMAL(12,2) NOT NULL,
		payment_plan   TEXT          NOT NULL,
		payment_status TEXT          NOT NULL DEFAULT 'pending',
		created_at     DATETIME      NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_status_start ON reservations (payment_status, start_date)`,
	`CREATE TABLE IF NOT EXISTS blocages (
		id         TEXT     NOT NULL PRIMARY KEY,
		start_date TEXT     NOT NULL,
		end_date   TEXT     NOT NULL,
		reason     TEXT     NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`,
}

// Migrate creates the reservations and blocages tables when missing.  It
// is safe to run on every start.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	var stmts []string
	switch dialect {
	case DialectMySQL:
		stmts = mysqlSchema
	case DialectSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("migrate: unknown dialect %q", dialect)
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
