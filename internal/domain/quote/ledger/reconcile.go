package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"presidia/go_backend/internal/domain/quote"
	"presidia/go_backend/internal/domain/quote/numfmt"
)

const (
	timeLayout    = "2006-01-02 15:04:05"
	zoneSeparator = ", "
)

// ToRow encodes a quote as an extended-schema row: prices in the ledger's
// comma-decimal form, zones joined into a single cell, everything else in its
// natural string form.
func ToRow(q quote.Quote) Row {
	return Row{
		strconv.Itoa(q.ID),
		q.CreatedAt.Format(timeLayout),
		q.Salesperson,
		q.Client,
		numfmt.Encode(q.AnnualPrice),
		q.PaymentTerms,
		q.ClientEmail,
		numfmt.Encode(q.BiennialPrice),
		strings.Join(q.Zones, zoneSeparator),
		q.TenderType,
		outcomesToken(q.OutcomesIncluded),
		strconv.Itoa(q.AnalysisPackageQty),
		q.InstallmentSchedule,
		strconv.Itoa(q.ValidityDays),
		q.Notes,
	}
}

// FromRow decodes a persisted row back into a quote for a reprint. The schema
// is inferred from the column count: rows from the old six-column ledger leave
// the remaining fields at their zero values.
func FromRow(row Row) (quote.Quote, error) {
	if len(row) < minimalCols {
		return quote.Quote{}, &quote.EncodingError{
			Field:  "row",
			Value:  fmt.Sprintf("%d columns", len(row)),
			Reason: "fewer columns than the minimal schema",
		}
	}

	var q quote.Quote

	id, err := strconv.Atoi(strings.TrimSpace(row[colID]))
	if err != nil {
		return quote.Quote{}, &quote.EncodingError{Field: "id", Value: row[colID], Reason: "not an integer"}
	}
	q.ID = id

	// A malformed stored timestamp never blocks a reprint: the document is
	// stamped with the reprint date anyway.
	if t, err := time.Parse(timeLayout, row[colCreatedAt]); err == nil {
		q.CreatedAt = t
	}

	q.Salesperson = row[colSalesperson]
	q.Client = row[colClient]
	if q.Client == "" {
		return quote.Quote{}, &quote.EncodingError{Field: "client", Value: "", Reason: "required column is empty"}
	}

	annual, err := decodePrice("annualPrice", row[colAnnualPrice])
	if err != nil {
		return quote.Quote{}, err
	}
	q.AnnualPrice = annual
	q.PaymentTerms = row[colPaymentTerms]

	if len(row) < extendedCols {
		return q, nil
	}

	q.ClientEmail = row[colClientEmail]
	if cell := row[colBiennialPrice]; cell != "" {
		biennial, err := decodePrice("biennialPrice", cell)
		if err != nil {
			return quote.Quote{}, err
		}
		q.BiennialPrice = biennial
	}
	if cell := row[colZones]; cell != "" {
		q.Zones = strings.Split(cell, zoneSeparator)
	}
	q.TenderType = row[colTenderType]
	q.OutcomesIncluded = decodeOutcomes(row[colOutcomes])

	qty, err := strconv.Atoi(strings.TrimSpace(row[colAnalysisQty]))
	if err != nil {
		return quote.Quote{}, &quote.EncodingError{Field: "analysisPackageQty", Value: row[colAnalysisQty], Reason: "not an integer"}
	}
	q.AnalysisPackageQty = qty

	q.InstallmentSchedule = row[colInstallments]

	validity, err := strconv.Atoi(strings.TrimSpace(row[colValidityDays]))
	if err != nil {
		return quote.Quote{}, &quote.EncodingError{Field: "validityDays", Value: row[colValidityDays], Reason: "not an integer"}
	}
	q.ValidityDays = validity

	q.Notes = row[colNotes]
	return q, nil
}

func decodePrice(field, cell string) (decimal.Decimal, error) {
	v, err := numfmt.Decode(cell)
	if err != nil {
		return decimal.Decimal{}, &quote.EncodingError{Field: field, Value: cell, Reason: "not a locale-formatted number"}
	}
	return v, nil
}

func outcomesToken(on bool) string {
	if on {
		return "SI"
	}
	return "NO"
}

// decodeOutcomes tolerates the accented spelling older rows carry.
func decodeOutcomes(cell string) bool {
	cell = strings.TrimSpace(cell)
	return strings.EqualFold(cell, "SI") || cell == "Sì" || cell == "Si"
}
