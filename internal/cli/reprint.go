package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"presidia/go_backend/internal/app/config"
	"presidia/go_backend/internal/domain/quote"
	"presidia/go_backend/internal/domain/quote/ledger"
	pdfgen "presidia/go_backend/internal/domain/quote/pdf/gofpdf"
	"presidia/go_backend/internal/infra/ledger/csvfile"
)

type reprintCmd struct {
	ledgerPath string
	id         int
	out        string
}

func (*reprintCmd) Name() string     { return "reprint" }
func (*reprintCmd) Synopsis() string { return "rebuild a quote PDF from a ledger export" }
func (*reprintCmd) Usage() string {
	return `reprint -ledger export.csv -id N [-out file.pdf]:
  Decode the ledger row with the given quote number and write its document.
`
}

func (c *reprintCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerPath, "ledger", "", "path to the ledger CSV export")
	f.IntVar(&c.id, "id", 0, "quote number to reprint")
	f.StringVar(&c.out, "out", "", "output file (default Ristampa_Prev_<id>.pdf)")
}

func (c *reprintCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ledgerPath == "" || c.id <= 0 {
		fmt.Fprintln(os.Stderr, "reprint: -ledger and -id are required")
		return subcommands.ExitUsageError
	}

	rows, err := csvfile.New(c.ledgerPath).Rows(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reprint: %v\n", err)
		return subcommands.ExitFailure
	}
	want := strconv.Itoa(c.id)
	var row ledger.Row
	for _, candidate := range rows {
		if len(candidate) > 0 && candidate[0] == want {
			row = candidate
			break
		}
	}
	if row == nil {
		fmt.Fprintf(os.Stderr, "reprint: quote %d not found in %s\n", c.id, c.ledgerPath)
		return subcommands.ExitFailure
	}

	q, err := ledger.FromRow(row)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reprint: %v\n", err)
		return subcommands.ExitFailure
	}
	items, err := quote.LineItems(q)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reprint: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := config.Load()
	gen := pdfgen.New(pdfgen.Company{
		Name:      cfg.CompanyName,
		Address:   cfg.CompanyAddr,
		VATNumber: cfg.CompanyVAT,
		Website:   cfg.CompanyWeb,
	}, cfg.LogoPath)

	pdfBytes, err := gen.Generate(q, items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reprint: %v\n", err)
		return subcommands.ExitFailure
	}

	out := c.out
	if out == "" {
		out = fmt.Sprintf("Ristampa_Prev_%d.pdf", c.id)
	}
	if err := os.WriteFile(out, pdfBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "reprint: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %s\n", out)
	return subcommands.ExitSuccess
}
