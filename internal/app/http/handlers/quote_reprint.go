package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"presidia/go_backend/internal/domain/quote"
	"presidia/go_backend/internal/domain/quote/ledger"
)

// ReprintQuote rebuilds the document from the persisted ledger row. The
// reconstructed quote is a new value: the document carries the reprint date,
// not the original issue date.
func (h *Handlers) ReprintQuote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad quote id", http.StatusBadRequest)
		return
	}

	rows, err := h.Store.Rows(r.Context())
	if err != nil {
		log.Printf("quote reprint: read rows: %v", err)
		http.Error(w, "ledger unavailable", http.StatusBadGateway)
		return
	}

	want := strconv.Itoa(id)
	var row ledger.Row
	for _, candidate := range rows {
		if len(candidate) > 0 && candidate[0] == want {
			row = candidate
			break
		}
	}
	if row == nil {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}

	q, err := ledger.FromRow(row)
	if err != nil {
		var encErr *quote.EncodingError
		if errors.As(err, &encErr) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("quote reprint: decode row: %v", err)
		http.Error(w, "cannot decode quote", http.StatusInternalServerError)
		return
	}

	items, err := quote.LineItems(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	pdfBytes, err := h.Gen.Generate(q, items)
	if err != nil {
		log.Printf("quote reprint: pdf: %v", err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	writePDF(w, pdfBytes, fmt.Sprintf("Ristampa_Prev_%d_%s.pdf", q.ID, fileToken(q.Client)))
}
