package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/shape"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(time.Second)
	return now
}

func newAlbum() *album.Album {
	return album.NewWithClock(&testClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)})
}

const demoScript = `# demo album
shape R rectangle 200 200 50 100 255 0 0
shape O oval 500 100 60 30 0 0 255

snapshot After first selfie
move R 100 300
resize R 25 100
color R 0 255 0
snapshot 2nd selfie
remove O
snapshot
`

func TestLoad_FullScript(t *testing.T) {
	a := newAlbum()
	res, err := Load(strings.NewReader(demoScript), a)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Skipped != 0 {
		t.Errorf("skipped %d lines, want 0", res.Skipped)
	}
	if res.Applied != 9 {
		t.Errorf("applied %d commands, want 9", res.Applied)
	}

	snaps := a.Snapshots()
	if len(snaps) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snaps))
	}
	if snaps[0].Description() != "After first selfie" {
		t.Errorf("description = %q", snaps[0].Description())
	}
	if snaps[2].Description() != "" {
		t.Errorf("bare snapshot should have empty description, got %q", snaps[2].Description())
	}

	r, ok := snaps[1].ShapeByName("R")
	if !ok {
		t.Fatal("R missing from second snapshot")
	}
	if p := r.Point(); p.X != 100 || p.Y != 300 {
		t.Errorf("R point = %v, want (100,300)", p)
	}
	if r.Width() != 25 {
		t.Errorf("R width = %g, want 25", r.Width())
	}
	if c := r.Color(); c.G() != 255 {
		t.Errorf("R color = %v, want green", c)
	}

	if _, ok := snaps[2].ShapeByName("O"); ok {
		t.Error("O should be removed in the last snapshot")
	}
}

func TestLoad_LoadedShapesAnchorLeftCorner(t *testing.T) {
	a := newAlbum()
	if _, err := Load(strings.NewReader("shape R rectangle 1 2 3 4 5 6 7\n"), a); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s, ok := a.ShapeByName("R")
	if !ok {
		t.Fatal("R not loaded")
	}
	if s.Anchor() != shape.LeftCorner {
		t.Errorf("anchor = %v, want left corner", s.Anchor())
	}
}

func TestLoad_KindCaseInsensitive(t *testing.T) {
	a := newAlbum()
	script := "shape A RECTANGLE 0 0 1 1 0 0 0\nshape B Oval 0 0 1 1 0 0 0\n"
	res, err := Load(strings.NewReader(script), a)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Applied != 2 {
		t.Errorf("applied %d, want 2", res.Applied)
	}
}

func TestLoad_SkipsBadLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown command", "rotate R 90"},
		{"shape with bad kind", "shape R triangle 0 0 1 1 0 0 0"},
		{"shape missing args", "shape R rectangle 0 0"},
		{"shape with non-numeric arg", "shape R rectangle 0 0 w h 0 0 0"},
		{"shape with zero width", "shape R rectangle 0 0 0 10 0 0 0"},
		{"move missing args", "move R 5"},
		{"resize non-positive", "resize R 0 10"},
		{"color missing channel", "color R 1 2"},
		{"remove with extra args", "remove R now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAlbum()
			a.Add(mustCreate(t, a))
			res, err := Load(strings.NewReader(tt.line+"\n"), a)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if res.Skipped != 1 {
				t.Errorf("skipped = %d, want 1", res.Skipped)
			}
			if res.Applied != 0 {
				t.Errorf("applied = %d, want 0", res.Applied)
			}
		})
	}
}

func TestLoad_IgnoresCommentsAndBlanks(t *testing.T) {
	a := newAlbum()
	script := "\n# a comment\n   \n# another\n"
	res, err := Load(strings.NewReader(script), a)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Applied != 0 || res.Skipped != 0 {
		t.Errorf("comments counted: %+v", res)
	}
}

func mustCreate(t *testing.T, a *album.Album) *shape.Shape {
	t.Helper()
	s, err := a.CreateShape(shape.Rectangle, "R", 0, 0, 0, shape.LeftCorner, 0, 0, 10, 10)
	if err != nil {
		t.Fatalf("CreateShape: %v", err)
	}
	return s
}
