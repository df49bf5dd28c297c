package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"presidia/go_backend/internal/domain/quote/ledger"
	"presidia/go_backend/internal/infra/ledger/csvfile"
)

type nextIDCmd struct {
	ledgerPath string
}

func (*nextIDCmd) Name() string     { return "next-id" }
func (*nextIDCmd) Synopsis() string { return "print the number the next quote would be assigned" }
func (*nextIDCmd) Usage() string {
	return `next-id -ledger export.csv:
  Print the next free quote number derived from the ledger export.
`
}

func (c *nextIDCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerPath, "ledger", "", "path to the ledger CSV export")
}

func (c *nextIDCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ledgerPath == "" {
		fmt.Fprintln(os.Stderr, "next-id: -ledger is required")
		return subcommands.ExitUsageError
	}
	id, err := ledger.NextID(ctx, csvfile.New(c.ledgerPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "next-id: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(id)
	return subcommands.ExitSuccess
}
