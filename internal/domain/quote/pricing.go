package quote

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// TaxRate is the VAT rate applied to every line of the economic proposal.
var TaxRate = decimal.New(22, -2)

// analysisCatalog maps an analysis package quantity to its fixed price.
var analysisCatalog = map[int]decimal.Decimal{
	0:  decimal.New(0, -2),
	1:  decimal.New(500, -2),
	5:  decimal.New(2250, -2),
	10: decimal.New(4000, -2),
	15: decimal.New(5250, -2),
	20: decimal.New(6000, -2),
}

// LineItem is one priced row of the economic proposal.
type LineItem struct {
	Description string
	Base        decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// NewLineItem prices a base amount with VAT, rounding half up to cents.
func NewLineItem(description string, base decimal.Decimal) LineItem {
	tax := base.Mul(TaxRate).Round(2)
	return LineItem{
		Description: description,
		Base:        base,
		Tax:         tax,
		Total:       base.Add(tax),
	}
}

// ResolveAnalysisPrice looks a package quantity up in the catalog.
func ResolveAnalysisPrice(qty int) (decimal.Decimal, error) {
	price, ok := analysisCatalog[qty]
	if !ok {
		return decimal.Decimal{}, &ValidationError{Field: "analysisPackageQty", Value: strconv.Itoa(qty), Reason: "not in the analysis package catalog"}
	}
	return price, nil
}

// LineItems computes the applicable rows of the economic proposal: the annual
// subscription always, the biennial one when offered, the analysis package
// when a quantity was selected.
func LineItems(q Quote) ([]LineItem, error) {
	items := []LineItem{NewLineItem("Abbonamento Annuale (12 Mesi)", q.AnnualPrice)}
	if q.BiennialPrice.IsPositive() {
		items = append(items, NewLineItem("Abbonamento Biennale (24 Mesi)", q.BiennialPrice))
	}
	if q.AnalysisPackageQty > 0 {
		price, err := ResolveAnalysisPrice(q.AnalysisPackageQty)
		if err != nil {
			return nil, err
		}
		desc := fmt.Sprintf("Pacchetto ANALISI BANDO PRO (%d Report)", q.AnalysisPackageQty)
		items = append(items, NewLineItem(desc, price))
	}
	return items, nil
}
