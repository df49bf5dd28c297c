package handlers

import (
	"presidia/go_backend/internal/app/config"
	"presidia/go_backend/internal/domain/quote/ledger"
	"presidia/go_backend/internal/domain/quote/pdf"
	pdfgen "presidia/go_backend/internal/domain/quote/pdf/gofpdf"
)

type Handlers struct {
	Store ledger.Store
	Gen   pdf.Generator
	Cfg   config.Config
}

func New(store ledger.Store, cfg config.Config) *Handlers {
	gen := pdfgen.New(pdfgen.Company{
		Name:      cfg.CompanyName,
		Address:   cfg.CompanyAddr,
		VATNumber: cfg.CompanyVAT,
		Website:   cfg.CompanyWeb,
	}, cfg.LogoPath)

	return &Handlers{
		Store: store,
		Gen:   gen,
		Cfg:   cfg,
	}
}
