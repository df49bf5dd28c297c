package ledger

import (
	"context"
	"strconv"
)

// NextID derives the next document id from the maximum numeric id already in
// the ledger. The header cell is skipped and cells that are not plain digit
// runs are ignored; an empty ledger yields 1.
//
// A failed ledger read is propagated, never defaulted: a fallback id handed
// out while the ledger is unreachable can collide with an existing row.
func NextID(ctx context.Context, store Store) (int, error) {
	col, err := store.IDColumn(ctx)
	if err != nil {
		return 0, err
	}
	if len(col) <= 1 {
		return 1, nil
	}
	max := 0
	for _, cell := range col[1:] {
		if !allDigits(cell) {
			continue
		}
		n, err := strconv.Atoi(cell)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return 1, nil
	}
	return max + 1, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
