package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/config"
	"github.com/san-kum/shapealbum/internal/shape"
)

// SnapshotToSVG renders one snapshot as a standalone SVG document: a
// background, a two-line header with the capture id and description,
// and one rect/ellipse primitive per shape.
func SnapshotToSVG(snap *album.Snapshot, cfg *config.Config) string {
	width, height := svgDimensions(snap, cfg)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">
`, width, height))
	sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s" stroke="black"/>
`, cfg.Canvas.Background))
	sb.WriteString(fmt.Sprintf(`<text x="10" y="25" font-size="16" fill="white">%s</text>
`, escape(snap.Timestamp().Format("2006-01-02 15:04:05"))))
	sb.WriteString(fmt.Sprintf(`<text x="10" y="45" font-size="13" fill="white">%s</text>
`, escape(snap.Description())))

	for _, s := range snap.Shapes() {
		sb.WriteString(shapeToSVG(s))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func shapeToSVG(s *shape.Shape) string {
	x, y, w, h := s.Bounds()
	r, g, b := s.Color().RGB255()
	fill := fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)

	switch s.Kind() {
	case shape.Oval:
		return fmt.Sprintf(`<ellipse id="%s" cx="%g" cy="%g" rx="%g" ry="%g" fill="%s"/>
`, escape(s.Name()), x+w/2, y+h/2, w/2, h/2, fill)
	default:
		return fmt.Sprintf(`<rect id="%s" x="%g" y="%g" width="%g" height="%g" fill="%s"/>
`, escape(s.Name()), x, y, w, h, fill)
	}
}

// svgDimensions grows the canvas until every shape fits with the
// configured margin, starting from room for the header text.
func svgDimensions(snap *album.Snapshot, cfg *config.Config) (float64, float64) {
	width := 100.0
	height := 160.0
	for _, s := range snap.Shapes() {
		x, y, w, h := s.Bounds()
		width = max2(width, x+w+cfg.Canvas.Margin)
		height = max2(height, y+h+cfg.Canvas.Margin)
	}
	return width, height
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
