// Package export renders persisted documents as downloadable PDF files and
// optionally archives them to blob storage.
package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Letter is the projection of a document handed to the renderer: the final
// body text plus the header fields shown on the page.
type Letter struct {
	Title     string
	Sender    string
	Recipient string
	Body      string
}

// Renderer produces a PDF byte stream for a letter.
type Renderer interface {
	Render(letter Letter) ([]byte, error)
}

type fpdfRenderer struct{}

// NewRenderer creates the default fpdf-based renderer: A4 portrait, centered
// title, body flowed as wrapped text.
func NewRenderer() Renderer {
	return fpdfRenderer{}
}

func (fpdfRenderer) Render(letter Letter) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Core fonts are cp1252 only; non-Latin text is transliterated
	// best-effort rather than rejected.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(letter.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(96, 96, 96)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("From: %s", letter.Sender)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("To: %s", letter.Recipient)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.MultiCell(0, 6, tr(letter.Body), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRenderFailed, err)
	}

	return buf.Bytes(), nil
}
