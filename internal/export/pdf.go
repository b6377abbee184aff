package export

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/shape"
)

// A4 portrait in millimeters, minus the page margin used below.
const (
	pdfPageWidth  = 210.0
	pdfPageHeight = 297.0
	pdfMargin     = 10.0
	pdfHeaderGap  = 20.0
)

// WritePDFFile renders one page per snapshot. Shape coordinates are
// scaled uniformly so the widest snapshot fits the printable area.
func WritePDFFile(path string, snapshots []*album.Snapshot) error {
	if !strings.HasSuffix(path, ".pdf") {
		return fmt.Errorf("pdf output path must end with .pdf, got %q", path)
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetFont("Helvetica", "", 11)

	for _, snap := range snapshots {
		p.AddPage()
		p.SetTextColor(0, 0, 0)
		p.Text(pdfMargin, pdfMargin, snap.Timestamp().Format("2006-01-02 15:04:05"))
		p.Text(pdfMargin, pdfMargin+6, snap.Description())

		scale := pdfScale(snap)
		for _, s := range snap.Shapes() {
			drawPDFShape(p, s, scale)
		}
	}

	return p.OutputFileAndClose(path)
}

func drawPDFShape(p *gofpdf.Fpdf, s *shape.Shape, scale float64) {
	x, y, w, h := s.Bounds()
	x = x*scale + pdfMargin
	y = y*scale + pdfMargin + pdfHeaderGap
	w *= scale
	h *= scale

	r, g, b := s.Color().RGB255()
	p.SetFillColor(r, g, b)

	switch s.Kind() {
	case shape.Oval:
		p.Ellipse(x+w/2, y+h/2, w/2, h/2, 0, "F")
	default:
		p.Rect(x, y, w, h, "F")
	}
}

func pdfScale(snap *album.Snapshot) float64 {
	maxX := 1.0
	maxY := 1.0
	for _, s := range snap.Shapes() {
		x, y, w, h := s.Bounds()
		maxX = max2(maxX, x+w)
		maxY = max2(maxY, y+h)
	}
	sx := (pdfPageWidth - 2*pdfMargin) / maxX
	sy := (pdfPageHeight - 2*pdfMargin - pdfHeaderGap) / maxY
	if sy < sx {
		sx = sy
	}
	if sx > 1 {
		sx = 1
	}
	return sx
}
