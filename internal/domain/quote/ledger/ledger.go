// Package ledger maps quotes to and from the append-only row store that
// records every issued document, and derives the next free quote number
// from it.
package ledger

import "context"

// Row is one persisted quote: an ordered list of string cells.
type Row []string

// Extended-schema cell indexes, in persisted order. Older ledgers carry only
// the first six cells.
const (
	colID = iota
	colCreatedAt
	colSalesperson
	colClient
	colAnnualPrice
	colPaymentTerms
	colClientEmail
	colBiennialPrice
	colZones
	colTenderType
	colOutcomes
	colAnalysisQty
	colInstallments
	colValidityDays
	colNotes

	extendedCols = 15
	minimalCols  = 6
)

// Header is the first row of a freshly created ledger.
var Header = Row{
	"ID_Preventivo", "Data", "Venditrice", "Cliente", "Prezzo Tot", "Pagamento",
	"Email", "Prezzo Biennale", "Zone", "Tipologia", "Esiti", "Analisi Qty",
	"Scadenza Rate", "Validita", "Note",
}

// Store is the append-only ledger collaborator.
//
// IDColumn returns the raw first column with the header cell first, mirroring
// a spreadsheet column read. Rows returns the data rows without the header.
// Implementations report failures as *quote.PersistenceError.
type Store interface {
	IDColumn(ctx context.Context) ([]string, error)
	Rows(ctx context.Context) ([]Row, error)
	Append(ctx context.Context, row Row) error
}
