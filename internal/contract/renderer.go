package contract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

const (
	fontFamily = "Helvetica"

	marginLeft  = 20.0
	marginRight = 20.0
	marginTop   = 20.0
	lineHeight  = 6.0

	// A line starting below bottomLimit moves to a new page.
	bottomLimit    = 275.0
	signatureLimit = 240.0
	signatureGap   = 14.0

	footerFirstLineY  = 290.0
	footerSecondLineY = 294.0
	footerFontSize    = 7.0
	footerGrey        = 120
)

type Renderer struct {
	tpl      Template
	compress bool
}

func NewRenderer(tpl Template) *Renderer {
	return &Renderer{
		tpl:      tpl,
		compress: true,
	}
}

// Render lays out the contract for the record and returns the PDF bytes.
func (r *Renderer) Render(ctx context.Context, rec entity.ClientRecord, date time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrRender, err)
	}

	pdf, err := r.document(rec, date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	err = pdf.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: output pdf: %w", entity.ErrRender, err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) document(rec entity.ClientRecord, date time.Time) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetCreationDate(date)
	pdf.SetTitle(fmt.Sprintf("%s - %s", Title, rec.Name), true)
	pdf.SetAuthor(r.tpl.ProfessionalName, true)

	pageWidth, _ := pdf.GetPageSize()

	l := &layout{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		y:        marginTop,
		width:    pageWidth,
		maxWidth: pageWidth - marginLeft - marginRight,
	}

	dateText := FormatDate(date)

	pdf.AddPage()
	r.body(l, rec, dateText)
	l.footer(rec, dateText)

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %w", entity.ErrRender, pdf.Error())
	}

	return pdf, nil
}

func (r *Renderer) body(l *layout, rec entity.ClientRecord, dateText string) {
	l.title(Title)
	l.paragraph(r.tpl.Intro())

	l.y += 2

	l.clientBlock(ClientFields(rec))

	l.y += 4

	for _, clause := range r.tpl.Clauses() {
		l.subtitle(clause.Title)

		for _, p := range clause.Paragraphs {
			l.paragraph(p)
		}
	}

	l.y += 8

	if l.y > signatureLimit {
		l.newPage()
	}

	l.font("", 10)
	l.text(marginLeft, r.tpl.PlaceAndDate(dateText))
	l.y += signatureGap

	l.font("B", 10)
	l.text(marginLeft, "Assinatura do(a) Paciente:")
	l.y += 6
	l.font("", 10)
	l.text(marginLeft, rec.Name)
	l.y += 4
	l.font("", 8)
	l.text(marginLeft, "Assinado digitalmente em "+dateText)
	l.font("", 10)

	l.y += signatureGap

	l.font("B", 10)
	l.text(marginLeft, "Assinatura da Psicóloga:")
	l.y += 6
	l.font("", 10)
	l.text(marginLeft, r.tpl.ProfessionalSignature())
}

type layout struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	y        float64
	width    float64
	maxWidth float64
}

func (l *layout) font(style string, size float64) {
	l.pdf.SetFont(fontFamily, style, size)
}

func (l *layout) text(x float64, s string) {
	l.pdf.Text(x, l.y, l.tr(s))
}

func (l *layout) textWidth(s string) float64 {
	return l.pdf.GetStringWidth(l.tr(s))
}

func (l *layout) centered(y float64, s string) {
	l.pdf.Text((l.width-l.textWidth(s))/2, y, l.tr(s))
}

func (l *layout) newPage() {
	l.pdf.AddPage()
	l.y = marginTop
}

func (l *layout) ensureLine() {
	if l.y > bottomLimit {
		l.newPage()
	}
}

func (l *layout) title(s string) {
	l.font("B", 14)
	l.centered(l.y, s)
	l.y += lineHeight + 4
}

func (l *layout) subtitle(s string) {
	l.ensureLine()
	l.font("B", 11)
	l.text(marginLeft, s)
	l.y += lineHeight + 1
}

func (l *layout) paragraph(s string) {
	l.font("", 10)

	for _, line := range l.wrap(s, l.maxWidth) {
		l.ensureLine()
		l.text(marginLeft, line)
		l.y += lineHeight - 1
	}

	l.y += 3
}

func (l *layout) field(label, value string) {
	l.font("B", 10)
	l.text(marginLeft, label)

	labelWidth := l.textWidth(label)

	l.font("", 10)
	l.text(marginLeft+labelWidth+1, value)
	l.y += lineHeight
}

// clientBlock writes the labeled client data inside a thin border.
func (l *layout) clientBlock(fields [][2]string) {
	const padding = 3.0

	top := l.y - lineHeight

	l.subtitle("Dados do(a) Paciente:")

	for _, f := range fields {
		l.field(f[0], f[1])
	}

	bottom := l.y - lineHeight + padding

	l.pdf.SetDrawColor(180, 180, 180)
	l.pdf.SetLineWidth(0.3)
	l.pdf.Rect(marginLeft-padding, top, l.maxWidth+2*padding, bottom-top, "D")
	l.pdf.SetDrawColor(0, 0, 0)
}

// wrap splits text into lines no wider than width, breaking on spaces.
func (l *layout) wrap(s string, width float64) []string {
	var (
		lines   []string
		current string
	)

	for _, word := range strings.Fields(s) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if current != "" && l.textWidth(candidate) > width {
			lines = append(lines, current)
			current = word

			continue
		}

		current = candidate
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// footer stamps every page once the total page count is known.
func (l *layout) footer(rec entity.ClientRecord, dateText string) {
	total := l.pdf.PageCount()
	attestation := fmt.Sprintf("Documento assinado digitalmente por %s - CPF: %s - %s", rec.Name, rec.CPF, dateText)

	for i := 1; i <= total; i++ {
		l.pdf.SetPage(i)
		l.font("", footerFontSize)
		// SetFont skips output when the font is unchanged; the size must be
		// restated on every page's content stream.
		l.pdf.SetFontSize(footerFontSize)
		l.pdf.SetTextColor(footerGrey, footerGrey, footerGrey)
		l.centered(footerFirstLineY, attestation)
		l.centered(footerSecondLineY, fmt.Sprintf("Página %d de %d", i, total))
		l.pdf.SetTextColor(0, 0, 0)
	}
}
