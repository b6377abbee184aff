package shape

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported shape variants.
type Kind int

const (
	Rectangle Kind = iota
	Oval
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Oval:
		return "oval"
	default:
		return "unknown"
	}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "rectangle":
		return Rectangle, nil
	case "oval":
		return Oval, nil
	default:
		return 0, fmt.Errorf("unknown shape kind: %q", s)
	}
}

// Anchor describes how a shape's stored (x, y) maps to its rendered
// bounding box.
type Anchor int

const (
	Corner Anchor = iota
	Center
	MinCorner
	LeftCorner
)

func (a Anchor) String() string {
	switch a {
	case Corner:
		return "Corner"
	case Center:
		return "Center"
	case MinCorner:
		return "Min Corner"
	case LeftCorner:
		return "Left Corner"
	default:
		return "unknown"
	}
}

// ParseAnchor resolves a case-insensitive anchor name.
func ParseAnchor(s string) (Anchor, error) {
	switch strings.ToLower(s) {
	case "corner":
		return Corner, nil
	case "center":
		return Center, nil
	case "min-corner", "min_corner":
		return MinCorner, nil
	case "left-corner", "left_corner":
		return LeftCorner, nil
	default:
		return 0, fmt.Errorf("unknown anchor: %q", s)
	}
}

const (
	minChannel = 0.0
	maxChannel = 255.0
)

// Color is an immutable RGB value. Channels are saturated to [0, 255]
// at construction rather than rejected.
type Color struct {
	r, g, b float64
}

func NewColor(r, g, b float64) Color {
	return Color{
		r: clamp(r, minChannel, maxChannel),
		g: clamp(g, minChannel, maxChannel),
		b: clamp(b, minChannel, maxChannel),
	}
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }

// RGB255 returns the channels truncated to 8-bit integers for renderers.
func (c Color) RGB255() (int, int, int) {
	return int(c.r), int(c.g), int(c.b)
}

func (c Color) String() string {
	return fmt.Sprintf("(%.1f,%.1f,%.1f)", c.r, c.g, c.b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Point is a position in 2-D space.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
