// Package shape provides the geometric value types of the album.
//
// A [Shape] is one of a closed set of variants ([Rectangle], [Oval])
// sharing a single attribute record: name, anchor point, anchor
// semantics, dimensions and color. The variants differ only in how the
// bounding box is filled when rendered.
//
//	s, err := shape.New(shape.Rectangle, "R", 255, 0, 0, shape.Corner, 200, 200, 50, 100)
//
// Shapes are mutable in place; [Shape.Clone] produces an independently
// owned copy, which is what snapshot isolation is built on.
package shape
