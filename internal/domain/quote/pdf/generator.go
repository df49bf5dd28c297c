package pdf

import "presidia/go_backend/internal/domain/quote"

type Generator interface {
	Generate(q quote.Quote, items []quote.LineItem) ([]byte, error)
}
