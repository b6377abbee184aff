// Package loader reads line-oriented album scripts and replays them
// against an album. One command per line; blank lines and lines
// starting with # are ignored; unrecognized or malformed lines are
// skipped and counted, never applied partially.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/shapealbum/internal/album"
	"github.com/san-kum/shapealbum/internal/shape"
)

// Result summarizes a load: how many commands applied and how many
// lines were skipped as malformed or unrecognized.
type Result struct {
	Applied int
	Skipped int
}

// LoadFile replays the script at path into the album.
func LoadFile(path string, a *album.Album) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return Load(f, a)
}

// Load replays a script from r into the album.
func Load(r io.Reader, a *album.Album) (Result, error) {
	var res Result
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if applyLine(line, a) {
			res.Applied++
		} else {
			res.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read script: %w", err)
	}
	return res, nil
}

func applyLine(line string, a *album.Album) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "shape":
		return applyShape(fields, a)
	case "snapshot":
		desc := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		a.TakeSnapshot(desc)
		return true
	case "move":
		return applyMove(fields, a)
	case "resize":
		return applyResize(fields, a)
	case "color":
		return applyColor(fields, a)
	case "remove":
		if len(fields) != 2 {
			return false
		}
		a.Remove(fields[1])
		return true
	default:
		return false
	}
}

// shape <name> <kind> <x> <y> <width> <height> <r> <g> <b>
func applyShape(fields []string, a *album.Album) bool {
	if len(fields) != 10 {
		return false
	}
	kind, err := shape.ParseKind(fields[2])
	if err != nil {
		return false
	}
	nums, ok := parseFloats(fields[3:])
	if !ok {
		return false
	}
	x, y, w, h := nums[0], nums[1], nums[2], nums[3]
	r, g, b := nums[4], nums[5], nums[6]

	s, err := a.CreateShape(kind, fields[1], r, g, b, shape.LeftCorner, x, y, w, h)
	if err != nil {
		return false
	}
	a.Add(s)
	return true
}

// move <name> <x> <y>
func applyMove(fields []string, a *album.Album) bool {
	if len(fields) != 4 {
		return false
	}
	nums, ok := parseFloats(fields[2:])
	if !ok {
		return false
	}
	a.Move(fields[1], nums[0], nums[1])
	return true
}

// resize <name> <width> <height>
func applyResize(fields []string, a *album.Album) bool {
	if len(fields) != 4 {
		return false
	}
	nums, ok := parseFloats(fields[2:])
	if !ok {
		return false
	}
	if err := a.Resize(fields[1], nums[0], nums[1]); err != nil {
		return false
	}
	return true
}

// color <name> <r> <g> <b>
func applyColor(fields []string, a *album.Album) bool {
	if len(fields) != 5 {
		return false
	}
	nums, ok := parseFloats(fields[2:])
	if !ok {
		return false
	}
	a.Recolor(fields[1], nums[0], nums[1], nums[2])
	return true
}

func parseFloats(fields []string) ([]float64, bool) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
