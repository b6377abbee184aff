package album

import (
	"testing"
	"time"

	"github.com/san-kum/shapealbum/internal/shape"
)

// stepClock advances by a fixed interval per call so consecutive
// captures never share a timestamp.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func newStepClock() *stepClock {
	return &stepClock{
		t:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		step: time.Second,
	}
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func mustShape(t *testing.T, a *Album, kind shape.Kind, name string, r, g, b, x, y, w, h float64) *shape.Shape {
	t.Helper()
	s, err := a.CreateShape(kind, name, r, g, b, shape.Corner, x, y, w, h)
	if err != nil {
		t.Fatalf("CreateShape(%s): %v", name, err)
	}
	return s
}

func TestCreateAndLookup(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 300, 0, 0, 200, 200, 50, 100))

	s, ok := a.ShapeByName("R")
	if !ok {
		t.Fatal("ShapeByName(R) not found")
	}
	if s.Color().R() != 255 {
		t.Errorf("red channel = %g, want clamped 255", s.Color().R())
	}
	if p := s.Point(); p.X != 200 || p.Y != 200 {
		t.Errorf("point = %v, want (200,200)", p)
	}
}

func TestLookupMiss(t *testing.T) {
	a := New()
	if _, ok := a.ShapeByName("ghost"); ok {
		t.Error("expected not-found for missing shape")
	}
	if _, ok := a.SnapshotByTimestamp(time.Now()); ok {
		t.Error("expected not-found for missing snapshot")
	}
}

func TestAddDuplicateName_NoOp(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 255, 0, 0, 10, 10, 50, 50))
	a.Add(mustShape(t, a, shape.Oval, "R", 0, 255, 0, 99, 99, 7, 7))

	if n := len(a.Shapes()); n != 1 {
		t.Fatalf("store holds %d shapes, want 1", n)
	}
	s, _ := a.ShapeByName("R")
	if s.Kind() != shape.Rectangle {
		t.Error("duplicate add overwrote the stored shape's kind")
	}
	if p := s.Point(); p.X != 10 || p.Y != 10 {
		t.Errorf("duplicate add changed geometry: %v", p)
	}
	if s.Color().R() != 255 {
		t.Error("duplicate add changed color")
	}
}

func TestTransformations(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 255, 0, 0, 200, 200, 50, 100))

	a.Move("R", 100, 300)
	if err := a.Resize("R", 25, 100); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	a.Recolor("R", 0, 255, 0)

	s, _ := a.ShapeByName("R")
	if p := s.Point(); p.X != 100 || p.Y != 300 {
		t.Errorf("point = %v, want (100,300)", p)
	}
	if s.Width() != 25 || s.Height() != 100 {
		t.Errorf("dims = %gx%g, want 25x100", s.Width(), s.Height())
	}
	if c := s.Color(); c.G() != 255 || c.R() != 0 {
		t.Errorf("color = %v, want (0,255,0)", c)
	}
}

func TestTransformMissingName_NoOp(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 0, 0, 0, 0, 0, 10, 10))

	a.Move("ghost", 1, 1)
	a.Recolor("ghost", 1, 1, 1)
	if err := a.Resize("ghost", 5, 5); err != nil {
		t.Fatalf("Resize on missing name should no-op, got %v", err)
	}

	s, _ := a.ShapeByName("R")
	if p := s.Point(); p.X != 0 || p.Y != 0 {
		t.Error("transform of missing name touched another shape")
	}
}

func TestResize_RejectsNonPositive(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 0, 0, 0, 0, 0, 10, 10))

	if err := a.Resize("R", 0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	s, _ := a.ShapeByName("R")
	if s.Width() != 10 {
		t.Error("rejected resize mutated the shape")
	}
}

func TestRemove(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 0, 0, 0, 0, 0, 10, 10))
	a.Add(mustShape(t, a, shape.Oval, "O", 0, 0, 0, 0, 0, 10, 10))

	a.Remove("R")
	if _, ok := a.ShapeByName("R"); ok {
		t.Error("R still present after Remove")
	}
	if _, ok := a.ShapeByName("O"); !ok {
		t.Error("Remove deleted an unrelated shape")
	}

	a.Remove("ghost") // no-op
	if n := len(a.Shapes()); n != 1 {
		t.Errorf("store holds %d shapes, want 1", n)
	}
}

func TestShapes_InsertionOrder(t *testing.T) {
	a := NewWithClock(newStepClock())
	for _, name := range []string{"c", "a", "b"} {
		a.Add(mustShape(t, a, shape.Oval, name, 0, 0, 0, 0, 0, 10, 10))
	}

	got := a.Shapes()
	want := []string{"c", "a", "b"}
	for i, s := range got {
		if s.Name() != want[i] {
			t.Errorf("shapes[%d] = %s, want %s", i, s.Name(), want[i])
		}
	}
}

func TestFilteredShapes(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R1", 0, 0, 0, 0, 0, 10, 10))
	a.Add(mustShape(t, a, shape.Oval, "O1", 0, 0, 0, 0, 0, 10, 10))
	a.Add(mustShape(t, a, shape.Rectangle, "R2", 0, 0, 0, 0, 0, 10, 10))

	rects := a.FilteredShapes(func(s *shape.Shape) bool { return s.Kind() == shape.Rectangle })
	if len(rects) != 2 || rects[0].Name() != "R1" || rects[1].Name() != "R2" {
		t.Errorf("unexpected filter result: %v", rects)
	}

	if got := a.FilteredShapes(nil); got != nil {
		t.Error("nil predicate should return nil")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 255, 0, 0, 200, 200, 50, 100))

	snap := a.TakeSnapshot("before")

	a.Move("R", 1, 1)
	if err := a.Resize("R", 5, 5); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	a.Recolor("R", 0, 0, 255)
	a.Remove("R")

	frozen, ok := snap.ShapeByName("R")
	if !ok {
		t.Fatal("captured shape missing from snapshot")
	}
	if p := frozen.Point(); p.X != 200 || p.Y != 200 {
		t.Errorf("snapshot point = %v, want (200,200)", p)
	}
	if frozen.Width() != 50 || frozen.Height() != 100 {
		t.Errorf("snapshot dims = %gx%g, want 50x100", frozen.Width(), frozen.Height())
	}
	if c := frozen.Color(); c.R() != 255 || c.B() != 0 {
		t.Errorf("snapshot color = %v, want (255,0,0)", c)
	}
}

func TestSnapshotReadsAreCopies(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 0, 0, 0, 0, 0, 10, 10))
	snap := a.TakeSnapshot("")

	got, _ := snap.ShapeByName("R")
	got.Move(99, 99)

	again, _ := snap.ShapeByName("R")
	if p := again.Point(); p.X != 0 || p.Y != 0 {
		t.Error("mutating a snapshot read leaked into the capture")
	}
}

func TestSnapshotByTimestamp(t *testing.T) {
	a := NewWithClock(newStepClock())
	s1 := a.TakeSnapshot("one")
	a.TakeSnapshot("two")

	got, ok := a.SnapshotByTimestamp(s1.Timestamp())
	if !ok {
		t.Fatal("exact timestamp lookup failed")
	}
	if got.Description() != "one" {
		t.Errorf("description = %q, want one", got.Description())
	}
}

func TestNavigation_InverseLaw(t *testing.T) {
	a := NewWithClock(newStepClock())
	s1 := a.TakeSnapshot("first")
	s2 := a.TakeSnapshot("second")
	s3 := a.TakeSnapshot("third")

	next, ok := a.NextSnapshot(s1)
	if !ok || next != s2 {
		t.Errorf("NextSnapshot(s1) = %v, want s2", next)
	}
	prev, ok := a.PreviousSnapshot(s2)
	if !ok || prev != s1 {
		t.Errorf("PreviousSnapshot(s2) = %v, want s1", prev)
	}
	next, ok = a.NextSnapshot(s2)
	if !ok || next != s3 {
		t.Errorf("NextSnapshot(s2) = %v, want s3", next)
	}

	if _, ok := a.PreviousSnapshot(s1); ok {
		t.Error("PreviousSnapshot of earliest should be not-found")
	}
	if _, ok := a.NextSnapshot(s3); ok {
		t.Error("NextSnapshot of latest should be not-found")
	}
}

func TestTimestamps_NonDecreasing(t *testing.T) {
	a := NewWithClock(newStepClock())
	for i := 0; i < 5; i++ {
		a.TakeSnapshot("")
	}

	stamps := a.Timestamps()
	for i := 1; i < len(stamps); i++ {
		if stamps[i].Before(stamps[i-1]) {
			t.Errorf("timestamps out of order at %d: %v < %v", i, stamps[i], stamps[i-1])
		}
	}
}

func TestSnapshotIDsUnique(t *testing.T) {
	a := NewWithClock(newStepClock())
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		snap := a.TakeSnapshot("")
		if seen[snap.ID()] {
			t.Fatalf("duplicate snapshot id %s", snap.ID())
		}
		seen[snap.ID()] = true
	}
}

func TestReset(t *testing.T) {
	a := NewWithClock(newStepClock())
	a.Add(mustShape(t, a, shape.Rectangle, "R", 0, 0, 0, 0, 0, 10, 10))
	a.TakeSnapshot("about to vanish")

	a.Reset()

	if n := len(a.Shapes()); n != 0 {
		t.Errorf("store holds %d shapes after reset", n)
	}
	if n := len(a.Snapshots()); n != 0 {
		t.Errorf("ledger holds %d snapshots after reset", n)
	}
}

func TestEmptyDescriptionAccepted(t *testing.T) {
	a := NewWithClock(newStepClock())
	snap := a.TakeSnapshot("")
	if snap.Description() != "" {
		t.Errorf("description = %q, want empty", snap.Description())
	}
}
