package album

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/shapealbum/internal/shape"
)

// Snapshot is an immutable point-in-time capture of the album's shapes.
// Timestamps identify snapshots for navigation but may collide under a
// coarse clock; the uuid id is unique regardless.
type Snapshot struct {
	id          string
	timestamp   time.Time
	description string
	shapes      []*shape.Shape
}

func newSnapshot(shapes []*shape.Shape, description string, ts time.Time) *Snapshot {
	frozen := make([]*shape.Shape, len(shapes))
	for i, s := range shapes {
		frozen[i] = s.Clone()
	}
	return &Snapshot{
		id:          uuid.NewString(),
		timestamp:   ts,
		description: description,
		shapes:      frozen,
	}
}

func (s *Snapshot) ID() string           { return s.id }
func (s *Snapshot) Timestamp() time.Time { return s.timestamp }
func (s *Snapshot) Description() string  { return s.description }

// Shapes returns clones of the captured shapes in capture order, so no
// caller can mutate the snapshot through the result.
func (s *Snapshot) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(s.shapes))
	for i, sh := range s.shapes {
		out[i] = sh.Clone()
	}
	return out
}

// ShapeByName returns a clone of the captured shape with the given
// name, or false if the capture holds no such shape.
func (s *Snapshot) ShapeByName(name string) (*shape.Shape, bool) {
	for _, sh := range s.shapes {
		if sh.Name() == name {
			return sh.Clone(), true
		}
	}
	return nil, false
}

func (s *Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Snapshot ID: %s\n", s.id)
	fmt.Fprintf(&sb, "Timestamp: %s\n", s.timestamp.Format("02-01-2006 15:04:05"))
	fmt.Fprintf(&sb, "Description: %s\n", s.description)
	sb.WriteString("Shape Information:\n")
	for i, sh := range s.shapes {
		sb.WriteString(sh.String())
		if i < len(s.shapes)-1 {
			sb.WriteString("\n\n")
		} else {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
