package render

import (
	"math"

	"github.com/san-kum/shapealbum/internal/shape"
)

// Scene projects album coordinates onto a braille canvas, scaling
// uniformly so every shape fits.
type Scene struct {
	canvas *Canvas
}

func NewScene(cols, rows int) *Scene {
	return &Scene{canvas: NewCanvas(cols, rows)}
}

// Draw clears the canvas and plots the given shapes.
func (sc *Scene) Draw(shapes []*shape.Shape) string {
	sc.canvas.Clear()

	scale, offX, offY := sc.fit(shapes)
	for _, s := range shapes {
		x, y, w, h := s.Bounds()
		px := int(math.Round((x - offX) * scale))
		py := int(math.Round((y - offY) * scale))
		pw := int(math.Round(w * scale))
		ph := int(math.Round(h * scale))

		switch s.Kind() {
		case shape.Oval:
			sc.canvas.DrawEllipse(px, py, pw, ph)
		default:
			sc.canvas.DrawRect(px, py, pw, ph)
		}
	}
	return sc.canvas.String()
}

// fit returns the world-to-subpixel scale and the world-space origin
// offset so all bounding boxes land inside the canvas.
func (sc *Scene) fit(shapes []*shape.Shape) (scale, offX, offY float64) {
	if len(shapes) == 0 {
		return 1, 0, 0
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range shapes {
		x, y, w, h := s.Bounds()
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x+w)
		maxY = math.Max(maxY, y+h)
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	subW := float64(sc.canvas.Width*2 - 1)
	subH := float64(sc.canvas.Height*4 - 1)
	scale = math.Min(subW/spanX, subH/spanY)
	return scale, minX, minY
}
