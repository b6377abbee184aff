package export

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/config"
	"github.com/san-kum/shapealbum/internal/shape"
)

// WritePNGFile rasterizes a single snapshot onto a fixed-size canvas.
// This is the bitmap counterpart of the SVG view.
func WritePNGFile(path string, snap *album.Snapshot, cfg *config.Config) error {
	if !strings.HasSuffix(path, ".png") {
		return fmt.Errorf("png output path must end with .png, got %q", path)
	}

	dc := gg.NewContext(cfg.Canvas.Width, cfg.Canvas.Height)
	dc.SetHexColor(cfg.Canvas.Background)
	dc.Clear()

	for _, s := range snap.Shapes() {
		drawPNGShape(dc, s)
	}

	dc.SetRGB255(255, 255, 255)
	dc.DrawString(snap.Timestamp().Format("2006-01-02 15:04:05"), 10, 20)
	dc.DrawString(snap.Description(), 10, 38)

	return dc.SavePNG(path)
}

func drawPNGShape(dc *gg.Context, s *shape.Shape) {
	x, y, w, h := s.Bounds()
	r, g, b := s.Color().RGB255()
	dc.SetRGB255(r, g, b)

	switch s.Kind() {
	case shape.Oval:
		dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	default:
		dc.DrawRectangle(x, y, w, h)
	}
	dc.Fill()
}
