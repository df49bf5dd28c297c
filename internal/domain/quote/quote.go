package quote

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultValidityDays is applied when the caller does not specify how long
// the offer stays open.
const DefaultValidityDays = 15

// Quote is the commercial offer rendered into the PDF document and persisted
// as one ledger row. It is a plain value: renders and encodes never mutate it.
type Quote struct {
	ID        int
	CreatedAt time.Time

	Salesperson string
	Client      string
	ClientEmail string

	AnnualPrice   decimal.Decimal
	BiennialPrice decimal.Decimal // zero means the biennial option is not offered

	Zones              []string
	TenderType         string
	OutcomesIncluded   bool
	AnalysisPackageQty int // 0 means no analysis package

	PaymentTerms        string
	InstallmentSchedule string
	Notes               string
	ValidityDays        int
}

// Validate checks the business rules a quote must satisfy before it is
// numbered, rendered and persisted.
func (q Quote) Validate() error {
	if q.Client == "" {
		return &ValidationError{Field: "client", Value: "", Reason: "must not be empty"}
	}
	if !q.AnnualPrice.IsPositive() {
		return &ValidationError{Field: "annualPrice", Value: q.AnnualPrice.String(), Reason: "must be greater than zero"}
	}
	if q.BiennialPrice.IsNegative() {
		return &ValidationError{Field: "biennialPrice", Value: q.BiennialPrice.String(), Reason: "must not be negative"}
	}
	if len(q.Zones) == 0 {
		return &ValidationError{Field: "zones", Value: "", Reason: "must contain at least one zone"}
	}
	if _, ok := analysisCatalog[q.AnalysisPackageQty]; !ok {
		return &ValidationError{Field: "analysisPackageQty", Value: strconv.Itoa(q.AnalysisPackageQty), Reason: "not in the analysis package catalog"}
	}
	if q.ValidityDays <= 0 {
		return &ValidationError{Field: "validityDays", Value: strconv.Itoa(q.ValidityDays), Reason: "must be positive"}
	}
	return nil
}
