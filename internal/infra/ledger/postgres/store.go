// Package postgres keeps ledger rows in a postgres table that mirrors the
// spreadsheet the quote archive was kept in: one text cell per column,
// append-only, insertion order preserved by a serial key.
package postgres

import (
	"context"

	"presidia/go_backend/internal/domain/quote"
	"presidia/go_backend/internal/domain/quote/ledger"
	db "presidia/go_backend/internal/infra/db/postgres"
)

type Store struct {
	db *db.DB
}

func NewStore(d *db.DB) *Store { return &Store{db: d} }

const schema = `
CREATE TABLE IF NOT EXISTS quote_ledger (
	seq            BIGSERIAL PRIMARY KEY,
	id             TEXT NOT NULL,
	created_at     TEXT NOT NULL DEFAULT '',
	salesperson    TEXT NOT NULL DEFAULT '',
	client         TEXT NOT NULL DEFAULT '',
	annual_price   TEXT NOT NULL DEFAULT '',
	payment_terms  TEXT NOT NULL DEFAULT '',
	client_email   TEXT NOT NULL DEFAULT '',
	biennial_price TEXT NOT NULL DEFAULT '',
	zones          TEXT NOT NULL DEFAULT '',
	tender_type    TEXT NOT NULL DEFAULT '',
	outcomes       TEXT NOT NULL DEFAULT '',
	analysis_qty   TEXT NOT NULL DEFAULT '',
	installments   TEXT NOT NULL DEFAULT '',
	validity_days  TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT ''
)`

const allColumns = `id, created_at, salesperson, client, annual_price, payment_terms,
	client_email, biennial_price, zones, tender_type, outcomes, analysis_qty,
	installments, validity_days, notes`

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Pool.Exec(ctx, schema); err != nil {
		return &quote.PersistenceError{Op: "ensure schema", Err: err}
	}
	return nil
}

// IDColumn returns the id column with the header cell first, mirroring a raw
// spreadsheet column read.
func (s *Store) IDColumn(ctx context.Context) ([]string, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT id FROM quote_ledger ORDER BY seq`)
	if err != nil {
		return nil, &quote.PersistenceError{Op: "read id column", Err: err}
	}
	defer rows.Close()

	col := []string{ledger.Header[0]}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, &quote.PersistenceError{Op: "scan id column", Err: err}
		}
		col = append(col, id)
	}
	if err := rows.Err(); err != nil {
		return nil, &quote.PersistenceError{Op: "read id column", Err: err}
	}
	return col, nil
}

func (s *Store) Rows(ctx context.Context) ([]ledger.Row, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT `+allColumns+` FROM quote_ledger ORDER BY seq`)
	if err != nil {
		return nil, &quote.PersistenceError{Op: "read rows", Err: err}
	}
	defer rows.Close()

	var out []ledger.Row
	for rows.Next() {
		row := make(ledger.Row, len(ledger.Header))
		dest := make([]any, len(row))
		for i := range row {
			dest[i] = &row[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &quote.PersistenceError{Op: "scan row", Err: err}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &quote.PersistenceError{Op: "read rows", Err: err}
	}
	return out, nil
}

func (s *Store) Append(ctx context.Context, row ledger.Row) error {
	// Minimal-schema rows are padded so every column binds.
	cells := make(ledger.Row, len(ledger.Header))
	copy(cells, row)

	args := make([]any, len(cells))
	for i, c := range cells {
		args[i] = c
	}
	_, err := s.db.Pool.Exec(ctx, `INSERT INTO quote_ledger (`+allColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`, args...)
	if err != nil {
		return &quote.PersistenceError{Op: "append row", Err: err}
	}
	return nil
}
