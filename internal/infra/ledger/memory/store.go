// Package memory keeps ledger rows in process memory. It backs tests and dry
// runs that must not touch a real ledger.
package memory

import (
	"context"
	"sync"

	"presidia/go_backend/internal/domain/quote/ledger"
)

type Store struct {
	mu   sync.RWMutex
	rows []ledger.Row
}

func New() *Store { return &Store{} }

func (s *Store) IDColumn(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	col := []string{ledger.Header[0]}
	for _, r := range s.rows {
		cell := ""
		if len(r) > 0 {
			cell = r[0]
		}
		col = append(col, cell)
	}
	return col, nil
}

func (s *Store) Rows(_ context.Context) ([]ledger.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ledger.Row, len(s.rows))
	for i, r := range s.rows {
		row := make(ledger.Row, len(r))
		copy(row, r)
		out[i] = row
	}
	return out, nil
}

func (s *Store) Append(_ context.Context, row ledger.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make(ledger.Row, len(row))
	copy(cp, row)
	s.rows = append(s.rows, cp)
	return nil
}
