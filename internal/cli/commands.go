// Package cli implements the quotectl subcommands: offline work against a
// ledger CSV export, for when a reprint or the next free number is needed
// without the service running.
package cli

import "github.com/google/subcommands"

var Commands = []subcommands.Command{
	&nextIDCmd{},
	&reprintCmd{},
}
