package ledger

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"presidia/go_backend/internal/domain/quote"
)

func sampleQuote() quote.Quote {
	return quote.Quote{
		ID:                  42,
		CreatedAt:           time.Date(2024, 5, 10, 9, 30, 15, 0, time.UTC),
		Salesperson:         "LUCIA VENEZIANO",
		Client:              "Rossi Costruzioni srl",
		ClientEmail:         "gare@rossicostruzioni.it",
		AnnualPrice:         decimal.New(120000, -2),
		BiennialPrice:       decimal.New(200000, -2),
		Zones:               []string{"Lombardia", "Veneto", "Emilia Romagna"},
		TenderType:          "Lavori edili e stradali",
		OutcomesIncluded:    true,
		AnalysisPackageQty:  10,
		PaymentTerms:        "Bonifico Bancario 30gg d.f.",
		InstallmentSchedule: "Unica Soluzione / Semestrale",
		Notes:               "Sconto riservato fino a fine mese",
		ValidityDays:        15,
	}
}

func TestRowRoundTrip(t *testing.T) {
	want := sampleQuote()
	got, err := FromRow(ToRow(want))
	if err != nil {
		t.Fatal(err)
	}

	if got.ID != want.ID {
		t.Errorf("ID = %d, want %d", got.ID, want.ID)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %s, want %s", got.CreatedAt, want.CreatedAt)
	}
	if got.Salesperson != want.Salesperson || got.Client != want.Client || got.ClientEmail != want.ClientEmail {
		t.Errorf("identity fields differ: %+v", got)
	}
	if !got.AnnualPrice.Equal(want.AnnualPrice) {
		t.Errorf("AnnualPrice = %s, want %s", got.AnnualPrice, want.AnnualPrice)
	}
	if !got.BiennialPrice.Equal(want.BiennialPrice) {
		t.Errorf("BiennialPrice = %s, want %s", got.BiennialPrice, want.BiennialPrice)
	}
	if !reflect.DeepEqual(got.Zones, want.Zones) {
		t.Errorf("Zones = %v, want %v", got.Zones, want.Zones)
	}
	if got.TenderType != want.TenderType || got.OutcomesIncluded != want.OutcomesIncluded {
		t.Errorf("service fields differ: %+v", got)
	}
	if got.AnalysisPackageQty != want.AnalysisPackageQty || got.ValidityDays != want.ValidityDays {
		t.Errorf("numeric fields differ: qty=%d validity=%d", got.AnalysisPackageQty, got.ValidityDays)
	}
	if got.PaymentTerms != want.PaymentTerms || got.InstallmentSchedule != want.InstallmentSchedule || got.Notes != want.Notes {
		t.Errorf("free-text fields differ: %+v", got)
	}
}

func TestToRowEncodesPricesInLocaleForm(t *testing.T) {
	row := ToRow(sampleQuote())
	if row[colAnnualPrice] != "1200,00" {
		t.Errorf("annual price cell = %q, want 1200,00", row[colAnnualPrice])
	}
	if row[colBiennialPrice] != "2000,00" {
		t.Errorf("biennial price cell = %q, want 2000,00", row[colBiennialPrice])
	}
	if row[colZones] != "Lombardia, Veneto, Emilia Romagna" {
		t.Errorf("zones cell = %q", row[colZones])
	}
	if row[colOutcomes] != "SI" {
		t.Errorf("outcomes cell = %q, want SI", row[colOutcomes])
	}
	if row[colCreatedAt] != "2024-05-10 09:30:15" {
		t.Errorf("created-at cell = %q", row[colCreatedAt])
	}
}

func TestFromRowMinimalSchema(t *testing.T) {
	row := Row{"7", "2023-01-02 10:00:00", "MAX", "Bianchi spa", "850,00", "Bonifico 60gg"}
	q, err := FromRow(row)
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != 7 || q.Client != "Bianchi spa" || q.PaymentTerms != "Bonifico 60gg" {
		t.Errorf("decoded quote %+v", q)
	}
	if !q.AnnualPrice.Equal(decimal.New(85000, -2)) {
		t.Errorf("AnnualPrice = %s, want 850", q.AnnualPrice)
	}
	// fields absent from the minimal schema stay at their zero values
	if q.ClientEmail != "" || q.Zones != nil || q.AnalysisPackageQty != 0 || q.ValidityDays != 0 {
		t.Errorf("minimal decode filled absent fields: %+v", q)
	}
}

func TestFromRowGroupedPrice(t *testing.T) {
	row := ToRow(sampleQuote())
	row[colAnnualPrice] = "1.200,00" // older rows carry thousands grouping
	q, err := FromRow(row)
	if err != nil {
		t.Fatal(err)
	}
	if !q.AnnualPrice.Equal(decimal.New(120000, -2)) {
		t.Errorf("AnnualPrice = %s, want 1200", q.AnnualPrice)
	}
}

func TestFromRowAcceptsLegacyOutcomeToken(t *testing.T) {
	row := ToRow(sampleQuote())
	row[colOutcomes] = "Sì"
	q, err := FromRow(row)
	if err != nil {
		t.Fatal(err)
	}
	if !q.OutcomesIncluded {
		t.Error("legacy outcome token not recognized")
	}
}

func TestFromRowErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(Row) Row
		field  string
	}{
		{"too few columns", func(r Row) Row { return r[:3] }, "row"},
		{"bad id", func(r Row) Row { r[colID] = "n/a"; return r }, "id"},
		{"missing client", func(r Row) Row { r[colClient] = ""; return r }, "client"},
		{"bad annual price", func(r Row) Row { r[colAnnualPrice] = "free"; return r }, "annualPrice"},
		{"bad biennial price", func(r Row) Row { r[colBiennialPrice] = "x,y"; return r }, "biennialPrice"},
		{"bad analysis qty", func(r Row) Row { r[colAnalysisQty] = "ten"; return r }, "analysisPackageQty"},
		{"bad validity", func(r Row) Row { r[colValidityDays] = "soon"; return r }, "validityDays"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := FromRow(c.mutate(ToRow(sampleQuote())))
			var encErr *quote.EncodingError
			if !errors.As(err, &encErr) {
				t.Fatalf("error %T (%v), want *quote.EncodingError", err, err)
			}
			if encErr.Field != c.field {
				t.Errorf("field = %q, want %q", encErr.Field, c.field)
			}
		})
	}
}

func TestZoneRoundTrip(t *testing.T) {
	zones := []string{"Tutta Italia", "Estero (UE)", "Estero (Extra UE)"}
	joined := strings.Join(zones, zoneSeparator)
	if got := strings.Split(joined, zoneSeparator); !reflect.DeepEqual(got, zones) {
		t.Errorf("split(join(%v)) = %v", zones, got)
	}
}
