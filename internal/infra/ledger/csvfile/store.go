// Package csvfile reads and appends ledger rows in a CSV export of the quote
// archive. The first record is the header row; a missing file is created with
// the header on first append.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"os"

	"presidia/go_backend/internal/domain/quote"
	"presidia/go_backend/internal/domain/quote/ledger"
)

type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

func (s *Store) IDColumn(_ context.Context) ([]string, error) {
	recs, err := s.read()
	if err != nil {
		return nil, err
	}
	col := make([]string, 0, len(recs))
	for _, rec := range recs {
		cell := ""
		if len(rec) > 0 {
			cell = rec[0]
		}
		col = append(col, cell)
	}
	return col, nil
}

func (s *Store) Rows(_ context.Context) ([]ledger.Row, error) {
	recs, err := s.read()
	if err != nil {
		return nil, err
	}
	if len(recs) <= 1 {
		return nil, nil
	}
	rows := make([]ledger.Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		rows = append(rows, ledger.Row(rec))
	}
	return rows, nil
}

func (s *Store) Append(_ context.Context, row ledger.Row) error {
	fresh := false
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		fresh = true
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &quote.PersistenceError{Op: "open ledger file", Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(ledger.Header); err != nil {
			return &quote.PersistenceError{Op: "write header", Err: err}
		}
	}
	if err := w.Write(row); err != nil {
		return &quote.PersistenceError{Op: "append row", Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &quote.PersistenceError{Op: "append row", Err: err}
	}
	return nil
}

func (s *Store) read() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &quote.PersistenceError{Op: "open ledger file", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // the two schemas have different widths
	recs, err := r.ReadAll()
	if err != nil {
		return nil, &quote.PersistenceError{Op: "read ledger file", Err: err}
	}
	return recs, nil
}
