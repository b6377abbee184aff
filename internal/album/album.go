package album

import (
	"fmt"
	"time"

	"github.com/san-kum/shapealbum/internal/shape"
)

// Album owns the live shape store and the append-only snapshot ledger.
// It is the single surface presentation layers drive commands through.
//
// Album has no internal locking. Callers driving it from more than one
// goroutine must serialize access themselves.
type Album struct {
	clock     Clock
	shapes    []*shape.Shape
	snapshots []*Snapshot
}

// New constructs an empty album stamped by the wall clock.
func New() *Album {
	return NewWithClock(SystemClock())
}

// NewWithClock constructs an empty album using the given time source.
func NewWithClock(clock Clock) *Album {
	return &Album{clock: clock}
}

// CreateShape validates the parameters and returns a new shape. The
// shape is not stored; pass it to Add.
func (a *Album) CreateShape(kind shape.Kind, name string, r, g, b float64, anchor shape.Anchor, x, y, width, height float64) (*shape.Shape, error) {
	return shape.New(kind, name, r, g, b, anchor, x, y, width, height)
}

// Add inserts the shape unless one with the same name is already
// stored. The duplicate case is a silent no-op: the stored shape keeps
// its geometry and color even when the new one differs.
func (a *Album) Add(s *shape.Shape) {
	if s == nil {
		return
	}
	for _, existing := range a.shapes {
		if existing.Name() == s.Name() {
			return
		}
	}
	a.shapes = append(a.shapes, s)
}

// Move relocates every stored shape with the given name. Missing names
// are a no-op.
func (a *Album) Move(name string, x, y float64) {
	for _, s := range a.shapes {
		if s.Name() == name {
			s.Move(x, y)
		}
	}
}

// Resize updates the dimensions of every stored shape with the given
// name. Missing names are a no-op; non-positive dimensions fail before
// any shape changes.
func (a *Album) Resize(name string, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("dimensions must be positive, got %gx%g", width, height)
	}
	for _, s := range a.shapes {
		if s.Name() == name {
			if err := s.Resize(width, height); err != nil {
				return err
			}
		}
	}
	return nil
}

// Recolor updates the color of every stored shape with the given name,
// saturating channels to [0, 255]. Missing names are a no-op.
func (a *Album) Recolor(name string, r, g, b float64) {
	for _, s := range a.shapes {
		if s.Name() == name {
			s.Recolor(r, g, b)
		}
	}
}

// Remove deletes every stored shape with the given name.
func (a *Album) Remove(name string) {
	kept := a.shapes[:0]
	for _, s := range a.shapes {
		if s.Name() != name {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(a.shapes); i++ {
		a.shapes[i] = nil
	}
	a.shapes = kept
}

// ShapeByName returns the live shape with the given name, or false if
// none is stored.
func (a *Album) ShapeByName(name string) (*shape.Shape, bool) {
	for _, s := range a.shapes {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// Shapes returns the live shapes in insertion order. The slice is a
// copy; the shapes are the live ones.
func (a *Album) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(a.shapes))
	copy(out, a.shapes)
	return out
}

// FilteredShapes returns the live shapes satisfying pred, in insertion
// order, evaluated eagerly against current state.
func (a *Album) FilteredShapes(pred func(*shape.Shape) bool) []*shape.Shape {
	if pred == nil {
		return nil
	}
	var out []*shape.Shape
	for _, s := range a.shapes {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// TakeSnapshot deep-clones the current shapes, stamps the capture with
// the album's clock and appends it to the ledger.
func (a *Album) TakeSnapshot(description string) *Snapshot {
	snap := newSnapshot(a.shapes, description, a.clock.Now())
	a.snapshots = append(a.snapshots, snap)
	return snap
}

// Snapshots returns the ledger in capture order.
func (a *Album) Snapshots() []*Snapshot {
	out := make([]*Snapshot, len(a.snapshots))
	copy(out, a.snapshots)
	return out
}

// SnapshotByTimestamp returns the first snapshot whose timestamp equals
// ts exactly, or false if none matches.
func (a *Album) SnapshotByTimestamp(ts time.Time) (*Snapshot, bool) {
	for _, snap := range a.snapshots {
		if snap.Timestamp().Equal(ts) {
			return snap, true
		}
	}
	return nil, false
}

// PreviousSnapshot returns the snapshot with the greatest timestamp
// strictly before the given one, or false if it is the earliest.
func (a *Album) PreviousSnapshot(current *Snapshot) (*Snapshot, bool) {
	if current == nil {
		return nil, false
	}
	var best *Snapshot
	for _, snap := range a.snapshots {
		if !snap.Timestamp().Before(current.Timestamp()) {
			continue
		}
		if best == nil || snap.Timestamp().After(best.Timestamp()) {
			best = snap
		}
	}
	return best, best != nil
}

// NextSnapshot returns the snapshot with the smallest timestamp
// strictly after the given one, or false if it is the latest.
func (a *Album) NextSnapshot(current *Snapshot) (*Snapshot, bool) {
	if current == nil {
		return nil, false
	}
	var best *Snapshot
	for _, snap := range a.snapshots {
		if !snap.Timestamp().After(current.Timestamp()) {
			continue
		}
		if best == nil || snap.Timestamp().Before(best.Timestamp()) {
			best = snap
		}
	}
	return best, best != nil
}

// Timestamps returns the capture timestamps in ledger order.
func (a *Album) Timestamps() []time.Time {
	out := make([]time.Time, len(a.snapshots))
	for i, snap := range a.snapshots {
		out[i] = snap.Timestamp()
	}
	return out
}

// Reset clears the store and the ledger together. Irreversible.
func (a *Album) Reset() {
	a.shapes = nil
	a.snapshots = nil
}

func (a *Album) String() string {
	stamps := make([]string, len(a.snapshots))
	for i, snap := range a.snapshots {
		stamps[i] = snap.Timestamp().Format("2006-01-02T15:04:05.000000")
	}
	return fmt.Sprintf("List of snapshots taken before reset: %v", stamps)
}
