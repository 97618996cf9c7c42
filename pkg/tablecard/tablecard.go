// Package tablecard renders a printable A6 card with the menu QR code, meant
// to sit on restaurant tables.
package tablecard

import (
	"bytes"
	"fmt"

	"github.com/aaravmahajanofficial/easymenu/internal/models"
	"github.com/aaravmahajanofficial/easymenu/pkg/qrcode"
	"github.com/phpdave11/gofpdf"
)

const (
	pageWidth = 105.0 // A6, mm
	margin    = 8.0
	qrSide    = 70.0
	qrImage   = "menu-qr"
)

const callToAction = "Aponte a câmera para ver o cardápio"

func Render(b models.Business, menuURL string) ([]byte, error) {
	png, err := qrcode.MenuPNG(menuURL, 512)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A6", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(b.Name, true)
	pdf.AddPage()

	// core fonts are cp1252; accents need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	width := pageWidth - 2*margin

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetY(margin + 2)
	pdf.MultiCell(width, 8, tr(b.Name), "", "C", false)

	if b.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(width, 5, tr(b.Description), "", "C", false)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(qrImage, imageOpts, bytes.NewReader(png))
	pdf.ImageOptions(qrImage, (pageWidth-qrSide)/2, pdf.GetY()+4, qrSide, qrSide, false, imageOpts, 0, "")

	pdf.SetY(pdf.GetY() + qrSide + 8)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(width, 6, tr(callToAction), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(width, 5, menuURL, "", 1, "C", false, 0, menuURL)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render table card: %w", err)
	}

	return buf.Bytes(), nil
}
