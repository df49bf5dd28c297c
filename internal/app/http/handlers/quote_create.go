package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"presidia/go_backend/internal/domain/quote"
	"presidia/go_backend/internal/domain/quote/ledger"
)

type CreateQuoteRequest struct {
	Salesperson         string   `json:"salesperson"`
	Client              string   `json:"client"`
	ClientEmail         string   `json:"client_email"`
	AnnualPrice         float64  `json:"annual_price"`
	BiennialPrice       float64  `json:"biennial_price"`
	Zones               []string `json:"zones"`
	TenderType          string   `json:"tender_type"`
	OutcomesIncluded    bool     `json:"outcomes_included"`
	AnalysisPackageQty  int      `json:"analysis_package_qty"`
	PaymentTerms        string   `json:"payment_terms"`
	InstallmentSchedule string   `json:"installment_schedule"`
	ValidityDays        int      `json:"validity_days"`
	Notes               string   `json:"notes"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	q := quote.Quote{
		Salesperson:         req.Salesperson,
		Client:              req.Client,
		ClientEmail:         req.ClientEmail,
		AnnualPrice:         decimal.NewFromFloat(req.AnnualPrice),
		BiennialPrice:       decimal.NewFromFloat(req.BiennialPrice),
		Zones:               req.Zones,
		TenderType:          req.TenderType,
		OutcomesIncluded:    req.OutcomesIncluded,
		AnalysisPackageQty:  req.AnalysisPackageQty,
		PaymentTerms:        req.PaymentTerms,
		InstallmentSchedule: req.InstallmentSchedule,
		Notes:               req.Notes,
		ValidityDays:        req.ValidityDays,
	}
	if q.ValidityDays == 0 {
		q.ValidityDays = quote.DefaultValidityDays
	}
	if err := q.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	id, err := ledger.NextID(r.Context(), h.Store)
	if err != nil {
		log.Printf("quote create: next id: %v", err)
		http.Error(w, "ledger unavailable", http.StatusBadGateway)
		return
	}
	q.ID = id
	q.CreatedAt = time.Now()

	items, err := quote.LineItems(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	pdfBytes, err := h.Gen.Generate(q, items)
	if err != nil {
		log.Printf("quote create: pdf: %v", err)
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	if err := h.Store.Append(r.Context(), ledger.ToRow(q)); err != nil {
		log.Printf("quote create: append: %v", err)
		http.Error(w, "ledger append failed", http.StatusBadGateway)
		return
	}

	writePDF(w, pdfBytes, fmt.Sprintf("Preventivo_%d_%s.pdf", q.ID, fileToken(q.Client)))
}

func writePDF(w http.ResponseWriter, pdfBytes []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func fileToken(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
