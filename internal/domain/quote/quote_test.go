package quote

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validQuote() Quote {
	return Quote{
		Client:       "Rossi Costruzioni srl",
		AnnualPrice:  decimal.RequireFromString("1200.00"),
		Zones:        []string{"Tutta Italia"},
		ValidityDays: DefaultValidityDays,
	}
}

func TestValidate(t *testing.T) {
	if err := validQuote().Validate(); err != nil {
		t.Fatalf("valid quote rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Quote)
		field  string
	}{
		{"empty client", func(q *Quote) { q.Client = "" }, "client"},
		{"zero annual price", func(q *Quote) { q.AnnualPrice = decimal.Zero }, "annualPrice"},
		{"negative annual price", func(q *Quote) { q.AnnualPrice = decimal.RequireFromString("-1") }, "annualPrice"},
		{"negative biennial price", func(q *Quote) { q.BiennialPrice = decimal.RequireFromString("-1") }, "biennialPrice"},
		{"no zones", func(q *Quote) { q.Zones = nil }, "zones"},
		{"unknown analysis qty", func(q *Quote) { q.AnalysisPackageQty = 3 }, "analysisPackageQty"},
		{"zero validity", func(q *Quote) { q.ValidityDays = 0 }, "validityDays"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := validQuote()
			c.mutate(&q)
			err := q.Validate()
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Fatalf("error %T, want *ValidationError", err)
			}
			if valErr.Field != c.field {
				t.Errorf("field = %q, want %q", valErr.Field, c.field)
			}
		})
	}
}
