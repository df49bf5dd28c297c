package gofpdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"presidia/go_backend/internal/domain/quote"
)

func testGenerator() *Generator {
	g := New(Company{
		Name:      "Presidia Group srl",
		Address:   "Via Vittorio Veneto, 180/1 - AREZZO",
		VATNumber: "P.IVA 07141051214",
		Website:   "www.presidiagroup.it",
	}, "missing-logo.png")
	g.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return g
}

func testQuote() quote.Quote {
	return quote.Quote{
		ID:                  3,
		CreatedAt:           time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC),
		Salesperson:         "MAX",
		Client:              "Rossi Costruzioni srl",
		ClientEmail:         "gare@rossicostruzioni.it",
		AnnualPrice:         decimal.New(120000, -2),
		Zones:               []string{"Tutta Italia"},
		TenderType:          "Lavori edili",
		OutcomesIncluded:    true,
		PaymentTerms:        "Bonifico Bancario 30gg d.f.",
		InstallmentSchedule: "Unica Soluzione / Semestrale",
		ValidityDays:        15,
	}
}

func render(t *testing.T, q quote.Quote) []byte {
	t.Helper()
	items, err := quote.LineItems(q)
	if err != nil {
		t.Fatal(err)
	}
	out, err := testGenerator().Generate(q, items)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", out[:8])
	}
	return out
}

func TestGenerateSinglePage(t *testing.T) {
	out := render(t, testQuote())
	if !bytes.Contains(out, []byte("/Count 1")) {
		t.Error("expected a one-page document")
	}
}

func TestGenerateLongNotesBreaksPage(t *testing.T) {
	q := testQuote()
	q.Notes = strings.Repeat("Condizioni particolari di fornitura concordate con il cliente in fase di trattativa. ", 80)
	out := render(t, q)
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Error("expected the optional services block on a second page")
	}
}

func TestGenerateMissingLogoIsNotAnError(t *testing.T) {
	// testGenerator points at a logo path that does not exist; the header
	// area is simply left blank.
	render(t, testQuote())
}

func TestOptionalServicesStart(t *testing.T) {
	cases := []struct {
		y         float64
		wantY     float64
		wantBreak bool
	}{
		{100, 238, false},
		{220, 238, false},
		{228, 238, false},
		{229, 239, false},
		{230, 240, false},
		{235, 240, false},
		{245, 250, false},
		{249.5, 254.5, false},
		{250, 30, true},
		{260, 30, true},
		{300, 30, true},
	}
	for _, c := range cases {
		gotY, gotBreak := optionalServicesStart(c.y)
		if gotY != c.wantY || gotBreak != c.wantBreak {
			t.Errorf("optionalServicesStart(%v) = (%v, %v), want (%v, %v)",
				c.y, gotY, gotBreak, c.wantY, c.wantBreak)
		}
	}
}

func TestAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1200", "1,200.00"},
		{"48.8", "48.80"},
		{"1234567.89", "1,234,567.89"},
		{"0", "0.00"},
	}
	for _, c := range cases {
		if got := amount(decimal.RequireFromString(c.in)); got != c.want {
			t.Errorf("amount(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
