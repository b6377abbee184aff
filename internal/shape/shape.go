package shape

import (
	"fmt"
)

// Shape is a named 2-D geometric entity. It is mutable in place for
// move/resize/recolor; identity within a store is by name alone.
type Shape struct {
	name   string
	kind   Kind
	anchor Anchor
	point  Point
	width  float64
	height float64
	color  Color
}

// New validates and constructs a shape. Color channels are saturated
// rather than rejected, but negative channel inputs are invalid.
func New(kind Kind, name string, r, g, b float64, anchor Anchor, x, y, width, height float64) (*Shape, error) {
	if name == "" {
		return nil, fmt.Errorf("shape name must not be empty")
	}
	if r < 0 || g < 0 || b < 0 {
		return nil, fmt.Errorf("color channels must be non-negative, got (%g,%g,%g)", r, g, b)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %gx%g", width, height)
	}
	if kind != Rectangle && kind != Oval {
		return nil, fmt.Errorf("unknown shape kind: %d", kind)
	}
	if anchor != Corner && anchor != Center && anchor != MinCorner && anchor != LeftCorner {
		return nil, fmt.Errorf("unknown anchor: %d", anchor)
	}
	return &Shape{
		name:   name,
		kind:   kind,
		anchor: anchor,
		point:  Point{X: x, Y: y},
		width:  width,
		height: height,
		color:  NewColor(r, g, b),
	}, nil
}

func (s *Shape) Name() string    { return s.name }
func (s *Shape) Kind() Kind      { return s.kind }
func (s *Shape) Anchor() Anchor  { return s.anchor }
func (s *Shape) Point() Point    { return s.point }
func (s *Shape) Width() float64  { return s.width }
func (s *Shape) Height() float64 { return s.height }
func (s *Shape) Color() Color    { return s.color }

// Move relocates the anchor point.
func (s *Shape) Move(x, y float64) {
	s.point = Point{X: x, Y: y}
}

// Resize replaces the dimensions. Non-positive dimensions are rejected
// so the width/height invariant holds for the shape's whole lifetime.
func (s *Shape) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %gx%g", width, height)
	}
	s.width = width
	s.height = height
	return nil
}

// Recolor replaces the color, saturating channels to [0, 255].
func (s *Shape) Recolor(r, g, b float64) {
	s.color = NewColor(r, g, b)
}

// Clone returns a shape sharing no mutable state with the receiver.
// Snapshot isolation depends on this.
func (s *Shape) Clone() *Shape {
	c := *s
	return &c
}

// Bounds maps the anchor point to the shape's on-canvas bounding box.
// Center treats (x, y) as the box centroid; the corner anchors treat it
// as the top-left origin.
func (s *Shape) Bounds() (x, y, width, height float64) {
	x, y = s.point.X, s.point.Y
	if s.anchor == Center {
		x -= s.width / 2
		y -= s.height / 2
	}
	return x, y, s.width, s.height
}

// String renders a human-readable description, not a wire format.
func (s *Shape) String() string {
	dims := fmt.Sprintf("Width: %g, Height: %g", s.width, s.height)
	if s.kind == Oval {
		dims = fmt.Sprintf("X radius: %g, Y radius: %g", s.width, s.height)
	}
	return fmt.Sprintf("Name: %s\nType: %s\n%s: %s, %s,\nColor: %s",
		s.name, s.kind, s.anchor, s.point, dims, s.color)
}
