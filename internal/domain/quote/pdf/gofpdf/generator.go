// Package gofpdf renders the fixed quote template: a paginated A4 document
// with a branded header and footer on every page, two titled service boxes of
// dynamic height, the price table, and a trailing optional-services block
// that is never split across pages.
package gofpdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"presidia/go_backend/internal/domain/quote"
)

// Company is the identity block printed on every page.
type Company struct {
	Name      string
	Address   string
	VATNumber string
	Website   string
}

type rgb struct{ r, g, b int }

// Brand palette.
var (
	colorPrimary    = rgb{230, 159, 42}
	colorText       = rgb{40, 40, 40}
	colorLightGray  = rgb{248, 248, 248}
	colorBonusBG    = rgb{255, 250, 225}
	colorOptionalBG = rgb{255, 253, 245}
)

const bonusText = "In caso di sottoscrizione del servizio entro il periodo di validita " +
	"del presente Preventivo, sara riconosciuto un bonus di 2 Polizze Fideiussorie " +
	"Gratuite del valore di 70 euro (per importi cauzionali fino a 19.000,00 euro)."

type Generator struct {
	company  Company
	logoPath string
	now      func() time.Time
}

func New(company Company, logoPath string) *Generator {
	return &Generator{company: company, logoPath: logoPath, now: time.Now}
}

// Generate renders the quote and its priced line items into a finished PDF.
// The issue and expiry dates are taken from the render time, so a reprint
// carries the reprint date.
func (g *Generator) Generate(q quote.Quote, items []quote.LineItem) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Preventivo Servizi di Abbonamento", false)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	now := g.now()

	doc.SetHeaderFunc(func() { g.header(doc, tr) })
	doc.SetFooterFunc(func() { g.footer(doc, tr) })
	doc.SetAutoPageBreak(true, 10)
	doc.AddPage()

	// Salesperson line below the header rule.
	doc.SetY(36)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetTextColor(80, 80, 80)
	doc.CellFormat(0, 4, tr("COMMERCIALE DI RIFERIMENTO: "+q.Salesperson), "", 1, "L", false, 0, "")

	// Title alongside the framed client box.
	doc.SetY(44)
	doc.SetFont("Helvetica", "B", 13)
	setTextColor(doc, colorPrimary)
	top := doc.GetY()
	doc.MultiCell(95, 6, tr("PREVENTIVO SERVIZI DI\nABBONAMENTO INFO GARE ED ESITI"), "", "L", false)
	doc.SetXY(110, top)
	setFillColor(doc, colorLightGray)
	doc.SetDrawColor(220, 220, 220)
	doc.SetLineWidth(0.2)
	doc.Rect(110, top, 90, 28, "FD")
	doc.SetXY(115, top+3)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(80, 5, tr("Spett.le "+q.Client), "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetX(115)
	doc.CellFormat(80, 5, tr("Email: "+q.ClientEmail), "", 1, "L", false, 0, "")
	doc.SetX(115)
	doc.CellFormat(80, 5, fmt.Sprintf("Preventivo N.: %d/%03d", now.Year(), q.ID), "", 1, "L", false, 0, "")
	doc.SetX(115)
	doc.CellFormat(80, 5, "Data: "+now.Format("02/01/2006"), "", 1, "L", false, 0, "")
	doc.SetY(top + 34)

	// The two service boxes share the zone and tender content.
	zones := strings.Join(q.Zones, ", ")
	g.titledBox(doc, tr, "CARATTERISTICHE SERVIZIO INFO GARE", zones, q.TenderType)
	g.titledBox(doc, tr, "CARATTERISTICHE SERVIZIO INFO ESITI ("+onOff(q.OutcomesIncluded)+")", zones, q.TenderType)

	// Price table.
	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 11)
	setTextColor(doc, colorPrimary)
	doc.CellFormat(0, 8, "PROPOSTA ECONOMICA", "", 1, "L", false, 0, "")
	setFillColor(doc, colorPrimary)
	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(95, 7, "  Tipologia Servizio", "", 0, "L", true, 0, "")
	doc.CellFormat(30, 7, "Imponibile", "", 0, "R", true, 0, "")
	doc.CellFormat(25, 7, "IVA (22%)", "", 0, "R", true, 0, "")
	doc.CellFormat(40, 7, "Totale  ", "", 1, "R", true, 0, "")
	for _, it := range items {
		g.priceRow(doc, tr, it)
	}

	// Bonus banner.
	doc.Ln(8)
	by := doc.GetY()
	setFillColor(doc, colorBonusBG)
	setDrawColor(doc, colorPrimary)
	doc.Rect(10, by, 190, 20, "FD")
	doc.SetXY(15, by+4)
	doc.SetFont("Helvetica", "B", 9)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(30, 4, "BONUS INCLUSO:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(45, by+4)
	doc.MultiCell(150, 4, tr(bonusText), "", "L", false)
	doc.SetY(by + 26)

	// Payment terms and offer expiry.
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(25, 6, "Pagamento:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(60, 6, tr(q.PaymentTerms), "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(30, 6, "Scadenza Rate:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.CellFormat(0, 6, tr(q.InstallmentSchedule), "", 1, "L", false, 0, "")
	expiry := now.AddDate(0, 0, q.ValidityDays).Format("02/01/2006")
	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 6, "Offerta valida fino al: "+expiry, "", 1, "L", false, 0, "")

	// Notes are omitted entirely when empty: no heading, no reserved space.
	if q.Notes != "" {
		doc.Ln(3)
		doc.SetFont("Helvetica", "B", 9)
		setTextColor(doc, colorPrimary)
		doc.CellFormat(0, 5, "NOTE:", "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(0, 0, 0)
		doc.MultiCell(0, 4, tr(q.Notes), "", "L", false)
	}

	g.optionalServices(doc, tr)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) header(doc *gofpdf.Fpdf, tr func(string) string) {
	// A missing logo leaves the area blank, it is not an error.
	if _, err := os.Stat(g.logoPath); err == nil {
		doc.ImageOptions(g.logoPath, 10, 8, 45, 0, false, gofpdf.ImageOptions{}, 0, "")
	}
	doc.SetFont("Helvetica", "B", 9)
	setTextColor(doc, colorText)
	doc.SetXY(100, 8)
	doc.CellFormat(100, 4, tr(g.company.Name), "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "", 8)
	doc.CellFormat(0, 4, tr(g.company.Address), "", 1, "R", false, 0, "")
	doc.CellFormat(0, 4, tr(g.company.VATNumber), "", 1, "R", false, 0, "")
	setTextColor(doc, colorPrimary)
	doc.CellFormat(0, 4, tr(g.company.Website), "", 1, "R", false, 0, "")
	doc.SetXY(10, 32)
	setDrawColor(doc, colorPrimary)
	doc.SetLineWidth(0.8)
	doc.Line(10, 32, 200, 32)
}

func (g *Generator) footer(doc *gofpdf.Fpdf, tr func(string) string) {
	doc.SetY(-12)
	doc.SetFont("Helvetica", "I", 7)
	doc.SetTextColor(150, 150, 150)
	line := fmt.Sprintf("%s - %s - Pagina %d", g.company.Name, g.company.Website, doc.PageNo())
	doc.CellFormat(0, 4, tr(line), "", 1, "C", false, 0, "")
}

// titledBox draws a heading bar followed by the labelled zone and tender
// text. The content height depends on how the text wraps, so the outline is
// drawn last, from the recorded top of the box.
func (g *Generator) titledBox(doc *gofpdf.Fpdf, tr func(string) string, title, zones, tender string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(255, 255, 255)
	setFillColor(doc, colorPrimary)
	doc.CellFormat(190, 7, tr("  "+title), "", 1, "L", true, 0, "")

	top := doc.GetY()
	setTextColor(doc, colorText)
	doc.SetFillColor(255, 255, 255)
	doc.SetY(top + 3)
	doc.SetX(15)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(45, 5, "COPERTURA GEOGRAFICA:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.MultiCell(130, 5, tr(zones), "", "L", false)
	doc.SetX(15)
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(45, 5, "TIPOLOGIA GARE:", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.MultiCell(130, 5, tr(tender), "", "L", false)
	doc.Ln(2)

	h := doc.GetY() - top
	doc.SetDrawColor(200, 200, 200)
	doc.Rect(10, top, 190, h, "D")
	doc.Ln(4)
}

func (g *Generator) priceRow(doc *gofpdf.Fpdf, tr func(string) string, it quote.LineItem) {
	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "", 9)
	x, y := doc.GetXY()
	doc.SetDrawColor(230, 230, 230)
	doc.Line(x, y+8, x+190, y+8)
	doc.CellFormat(95, 8, tr("  "+it.Description), "", 0, "L", false, 0, "")
	doc.CellFormat(30, 8, "E. "+amount(it.Base), "", 0, "R", false, 0, "")
	doc.CellFormat(25, 8, "E. "+amount(it.Tax), "", 0, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(40, 8, "E. "+amount(it.Total)+"  ", "", 1, "R", false, 0, "")
}

func (g *Generator) optionalServices(doc *gofpdf.Fpdf, tr func(string) string) {
	y, breakPage := optionalServicesStart(doc.GetY())
	if breakPage {
		doc.AddPage()
	}
	doc.SetY(y)
	setFillColor(doc, colorPrimary)
	doc.Rect(10, y, 190, 7, "F")
	doc.SetXY(10, y+1.5)
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(190, 5, tr("SERVIZI OPZIONALI OFFERTI DA "+strings.ToUpper(g.company.Name)), "", 1, "C", false, 0, "")
	setFillColor(doc, colorOptionalBG)
	setDrawColor(doc, colorPrimary)
	doc.Rect(10, y+7, 190, 28, "FD")
	doc.SetXY(15, y+10)
	doc.SetFont("Helvetica", "", 9)
	setTextColor(doc, colorText)
	doc.CellFormat(4, 6, "-", "", 0, "L", false, 0, "")
	doc.CellFormat(85, 6, "Business Intelligence su Analisi Ribassi Storici", "", 1, "L", false, 0, "")
	doc.SetX(15)
	doc.CellFormat(4, 6, "-", "", 0, "L", false, 0, "")
	doc.CellFormat(85, 6, "Assistenza Legale di 1 Livello", "", 1, "L", false, 0, "")
	doc.SetXY(105, y+10)
	doc.CellFormat(4, 6, "-", "", 0, "L", false, 0, "")
	doc.MultiCell(85, 6, "Preparazione Documentale di Gara\n(Predisposizione e Caricamento sul Portale)", "", "L", false)
	doc.SetXY(105, doc.GetY()+1)
	doc.CellFormat(4, 6, "-", "", 0, "L", false, 0, "")
	doc.CellFormat(85, 6, "Avvalimenti", "", 1, "L", false, 0, "")
}

// amount renders a decimal in the template's money form, e.g. "1,234.56".
// This is the printed form; the ledger stores the comma-decimal form instead.
func amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	return intPart + frac
}

func onOff(on bool) string {
	if on {
		return "SI"
	}
	return "NO"
}

func setTextColor(doc *gofpdf.Fpdf, c rgb) { doc.SetTextColor(c.r, c.g, c.b) }
func setFillColor(doc *gofpdf.Fpdf, c rgb) { doc.SetFillColor(c.r, c.g, c.b) }
func setDrawColor(doc *gofpdf.Fpdf, c rgb) { doc.SetDrawColor(c.r, c.g, c.b) }
